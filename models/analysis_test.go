package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullPayload = `{
	"case_id": "whatever",
	"normalized_query": {"original_text": "x", "language": "English", "english_version": "x"},
	"plain_language_summary": "summary",
	"ipc_sections": [{"section_number": "378", "title": "Theft", "explanation": "applies"}],
	"bns_sections": [],
	"legal_signal_checklist": {"property_taken": true},
	"procedural_guidance": {
		"possible_actions": ["file FIR"],
		"paths_explained": {"police_route": "a", "court_route": "b", "non_legal_resolution": "c"}
	},
	"missing_information": [],
	"limitations": ["not legal advice"]
}`

func TestParseCaseAnalysis(t *testing.T) {
	analysis, err := ParseCaseAnalysis([]byte(fullPayload))

	require.NoError(t, err)
	assert.Equal(t, "summary", analysis.PlainLanguageSummary)
	assert.Equal(t, "378", analysis.IPCSections[0].SectionNumber)
	assert.True(t, analysis.LegalSignalChecklist["property_taken"])
	assert.Equal(t, []string{"file FIR"}, analysis.ProceduralGuidance.PossibleActions)
}

func TestParseCaseAnalysisMissingKey(t *testing.T) {
	payload := `{"plain_language_summary": "summary", "ipc_sections": [], "bns_sections": []}`

	_, err := ParseCaseAnalysis([]byte(payload))

	assert.ErrorIs(t, err, ErrSchemaViolation)
	assert.Contains(t, err.Error(), "legal_signal_checklist")
}

func TestParseCaseAnalysisNotAnObject(t *testing.T) {
	_, err := ParseCaseAnalysis([]byte(`"just a string"`))

	assert.Error(t, err)
}

func TestParseCaseAnalysisWrongShape(t *testing.T) {
	payload := `{
		"plain_language_summary": "s",
		"ipc_sections": "should be a list",
		"bns_sections": [],
		"legal_signal_checklist": {},
		"procedural_guidance": {},
		"missing_information": [],
		"limitations": []
	}`

	_, err := ParseCaseAnalysis([]byte(payload))

	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestParseCaseAnalysisFillsNilCollections(t *testing.T) {
	payload := `{
		"plain_language_summary": "s",
		"ipc_sections": null,
		"bns_sections": null,
		"legal_signal_checklist": null,
		"procedural_guidance": {},
		"missing_information": null,
		"limitations": null
	}`

	analysis, err := ParseCaseAnalysis([]byte(payload))

	require.NoError(t, err)
	assert.NotNil(t, analysis.IPCSections)
	assert.NotNil(t, analysis.BNSSections)
	assert.NotNil(t, analysis.LegalSignalChecklist)
	assert.NotNil(t, analysis.MissingInformation)
	assert.NotNil(t, analysis.Limitations)
}
