package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"legal-backend/llm"
	"legal-backend/models"
)

// DocumentService suggests and drafts legal documents for an analyzed case
type DocumentService struct {
	completer llm.Completer
}

// NewDocumentService creates a new document service
func NewDocumentService(completer llm.Completer) *DocumentService {
	return &DocumentService{completer: completer}
}

// DocumentSuggestion is one document type the user may need
type DocumentSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DocumentSuggestions is the response of SuggestDocuments
type DocumentSuggestions struct {
	Suggestions []DocumentSuggestion `json:"suggestions"`
}

// GeneratedDocument is the response of GenerateDocument
type GeneratedDocument struct {
	DocumentText string `json:"document_text"`
}

func formatSectionRefs(sections []models.SectionExplanation) string {
	if len(sections) == 0 {
		return "(none)"
	}
	refs := make([]string, len(sections))
	for i, s := range sections {
		refs[i] = fmt.Sprintf("Section %s (%s)", s.SectionNumber, s.Title)
	}
	return strings.Join(refs, ", ")
}

// SuggestDocuments asks the model for 3-5 document types matching the case
func (s *DocumentService) SuggestDocuments(ctx context.Context, caseData *models.CaseAnalysis) (*DocumentSuggestions, error) {
	prompt := fmt.Sprintf(`Based on this Indian legal analysis, suggest 3 to 5 specific documents the user needs.
CASE: %s
SECTIONS: %s %s

Return ONLY a JSON object with a "suggestions" list of objects with 'title' and 'description'.
Example: {"suggestions": [{"title": "Police Complaint", "description": "short description"}]}`,
		caseData.NormalizedQuery.EnglishVersion,
		formatSectionRefs(caseData.IPCSections),
		formatSectionRefs(caseData.BNSSections))

	payload, err := s.completer.CompleteJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrExternalService, err)
	}

	var suggestions DocumentSuggestions
	if err := json.Unmarshal(payload, &suggestions); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrSchemaViolation, err)
	}

	return &suggestions, nil
}

// GenerateDocument drafts the selected document type for the case
func (s *DocumentService) GenerateDocument(ctx context.Context, caseData *models.CaseAnalysis, docTitle string) (*GeneratedDocument, error) {
	prompt := fmt.Sprintf(`You are a legal drafting expert in India.
Draft a formal '%s' for the following case:

CASE DETAILS: %s
LEGAL SECTIONS: %s and %s
PROCEDURAL GOAL: %s

INSTRUCTIONS:
1. Use a professional, official tone.
2. Use "________" for any missing personal details (Name, Address, Phone).
3. Mention the specific IPC and BNS sections retrieved.
4. Format it clearly as a Letter or Legal Notice.
5. DO NOT use markdown backticks.
6. Keep it concise but include the important points.

Format the response as a JSON object: {"document_text": "..."}`,
		docTitle,
		caseData.NormalizedQuery.EnglishVersion,
		formatSectionRefs(caseData.IPCSections),
		formatSectionRefs(caseData.BNSSections),
		strings.Join(caseData.ProceduralGuidance.PossibleActions, "; "))

	payload, err := s.completer.CompleteJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrExternalService, err)
	}

	var doc GeneratedDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrSchemaViolation, err)
	}
	if doc.DocumentText == "" {
		return nil, fmt.Errorf("%w: empty document_text", models.ErrSchemaViolation)
	}

	return &doc, nil
}
