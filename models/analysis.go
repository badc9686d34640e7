package models

import (
	"encoding/json"
	"fmt"
)

// NormalizedQuery is the provenance block of a CaseAnalysis. It is always
// written by the orchestrator from its own QueryContext, never taken from
// the reasoning model's output.
type NormalizedQuery struct {
	OriginalText   string `json:"original_text"`
	Language       string `json:"language"`
	EnglishVersion string `json:"english_version"`
}

// SectionExplanation is one retrieved section as explained in the analysis
type SectionExplanation struct {
	SectionNumber string `json:"section_number"`
	Title         string `json:"title"`
	Explanation   string `json:"explanation"`
}

// PathsExplained describes the procedural routes available to the user
type PathsExplained struct {
	PoliceRoute        string `json:"police_route"`
	CourtRoute         string `json:"court_route"`
	NonLegalResolution string `json:"non_legal_resolution"`
}

// ProceduralGuidance lists neutral next steps for the user
type ProceduralGuidance struct {
	PossibleActions []string       `json:"possible_actions"`
	PathsExplained  PathsExplained `json:"paths_explained"`
}

// CaseAnalysis is the final artifact returned by POST /analyze. The key set
// is fixed; CaseID and NormalizedQuery are overwritten by the orchestrator
// regardless of what the reasoning model produced for them.
type CaseAnalysis struct {
	CaseID               string               `json:"case_id"`
	NormalizedQuery      NormalizedQuery      `json:"normalized_query"`
	PlainLanguageSummary string               `json:"plain_language_summary"`
	IPCSections          []SectionExplanation `json:"ipc_sections"`
	BNSSections          []SectionExplanation `json:"bns_sections"`
	LegalSignalChecklist map[string]bool      `json:"legal_signal_checklist"`
	ProceduralGuidance   ProceduralGuidance   `json:"procedural_guidance"`
	MissingInformation   []string             `json:"missing_information"`
	Limitations          []string             `json:"limitations"`
}

// caseAnalysisKeys are the top-level keys the reasoning model must produce.
// case_id and normalized_query are excluded: the orchestrator owns them and
// overwrites whatever came back.
var caseAnalysisKeys = []string{
	"plain_language_summary",
	"ipc_sections",
	"bns_sections",
	"legal_signal_checklist",
	"procedural_guidance",
	"missing_information",
	"limitations",
}

// ParseCaseAnalysis decodes the reasoning model's JSON payload into a
// CaseAnalysis, rejecting payloads that omit any required top-level key so a
// partially shaped artifact is never returned to the caller.
func ParseCaseAnalysis(data []byte) (*CaseAnalysis, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("analysis payload is not a JSON object: %w", err)
	}

	for _, key := range caseAnalysisKeys {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("%w: missing key %q", ErrSchemaViolation, key)
		}
	}

	var analysis CaseAnalysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}

	if analysis.LegalSignalChecklist == nil {
		analysis.LegalSignalChecklist = map[string]bool{}
	}
	if analysis.IPCSections == nil {
		analysis.IPCSections = []SectionExplanation{}
	}
	if analysis.BNSSections == nil {
		analysis.BNSSections = []SectionExplanation{}
	}
	if analysis.MissingInformation == nil {
		analysis.MissingInformation = []string{}
	}
	if analysis.Limitations == nil {
		analysis.Limitations = []string{}
	}

	return &analysis, nil
}
