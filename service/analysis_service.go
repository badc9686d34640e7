package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"legal-backend/llm"
	"legal-backend/models"
	"legal-backend/search"

	"github.com/google/uuid"
)

// AnalysisService drives the analysis pipeline: normalize the query,
// retrieve candidate sections from both codes, synthesize the structured
// analysis, then stamp the provenance fields. Stages run strictly in
// sequence with no retries.
type AnalysisService struct {
	normalizer *NormalizerService
	retriever  *search.Retriever
	completer  llm.Completer
}

// AnalysisServiceOption is a functional option for AnalysisService
type AnalysisServiceOption func(*AnalysisService)

// WithNormalizer sets the query normalizer
func WithNormalizer(normalizer *NormalizerService) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.normalizer = normalizer
	}
}

// WithRetriever sets the statute retriever
func WithRetriever(retriever *search.Retriever) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.retriever = retriever
	}
}

// WithCompleter sets the reasoning model client
func WithCompleter(completer llm.Completer) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.completer = completer
	}
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(opts ...AnalysisServiceOption) *AnalysisService {
	s := &AnalysisService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// maxLegalTextChars bounds how much of each section's text goes into the
// synthesis prompt
const maxLegalTextChars = 200

// Analyze runs the full pipeline for one raw query. Normalization and
// retrieval failures degrade (passthrough query, empty result sets); a
// synthesis failure is fatal to the request since the bulk of the artifact
// only exists in the model's output.
func (s *AnalysisService) Analyze(ctx context.Context, rawText string) (*models.CaseAnalysis, error) {
	queryCtx := s.normalizer.Normalize(ctx, rawText)

	ipcResult, bnsResult := s.retriever.Retrieve(ctx, queryCtx.RefinedText)
	if ipcResult.Reason != models.EmptyReasonNone {
		log.Printf("IPC retrieval empty: %s", ipcResult.Reason)
	}
	if bnsResult.Reason != models.EmptyReasonNone {
		log.Printf("BNS retrieval empty: %s", bnsResult.Reason)
	}

	prompt := buildAnalysisPrompt(rawText, queryCtx.RefinedText, ipcResult, bnsResult)

	payload, err := s.completer.CompleteJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrExternalService, err)
	}

	analysis, err := models.ParseCaseAnalysis(payload)
	if err != nil {
		return nil, err
	}

	// The model is never trusted for identity or provenance: the case id is
	// freshly generated and the normalized query block comes from our own
	// pipeline state, whatever the payload echoed back.
	analysis.CaseID = uuid.New().String()
	analysis.NormalizedQuery = models.NormalizedQuery{
		OriginalText:   queryCtx.RawText,
		Language:       queryCtx.DetectedLanguage,
		EnglishVersion: queryCtx.RefinedText,
	}

	return analysis, nil
}

// formatMatches renders a retrieval result for the synthesis prompt,
// trimmed to section number, title and truncated legal text
func formatMatches(result models.RetrievalResult) string {
	if len(result.Matches) == 0 {
		return "(none retrieved)"
	}

	var b strings.Builder
	for _, match := range result.Matches {
		text := match.Record.FullLegalText
		if len(text) > maxLegalTextChars {
			text = text[:maxLegalTextChars] + "..."
		}
		fmt.Fprintf(&b, "- Section %s: %s\n  %s\n", match.Record.SectionNumber, match.Record.Title, text)
	}
	return b.String()
}

func buildAnalysisPrompt(rawText, refinedText string, ipcResult, bnsResult models.RetrievalResult) string {
	return fmt.Sprintf(`You are acting as a neutral Indian legal analysis assistant whose role is to help a citizen understand
their situation under Indian law in a calm, fair, and non-accusatory manner.

USER QUERY: %s
REFINED LEGAL CONTEXT: %s

RETRIEVED IPC SECTIONS:
%s

RETRIEVED BNS SECTIONS:
%s

TASK:
1. Understand the situation as described, focusing on facts rather than emotions.
2. If IPC or BNS sections are retrieved:
  - Explain ONLY those sections.
  - Explain WHY they may apply and under WHAT conditions they would NOT apply.
3. If no statutes are retrieved:
  - Provide a general explanation of how Indian law typically views such situations.
4. Populate only those legal signals that are necessary and relevant to requirement of the case. Mark true based on available user facts.
5. Describe procedural options neutrally.
6. Clearly state what information would strengthen legal clarity if the matter proceeds.

OUTPUT REQUIREMENTS (STRICT):

- Output MUST be valid JSON only.
- DO NOT add markdown, headings, or commentary.
- DO NOT change key names or structure.
- DO NOT add extra fields.
- Use simple, everyday language understandable by a non-lawyer.
- Avoid legal jargon unless necessary, and explain it when used.

{
  "case_id": "string",
  "normalized_query": {
    "original_text": "string",
    "language": "string",
    "english_version": "string"
  },
  "plain_language_summary": "string",
  "ipc_sections": [{ "section_number": "string", "title": "string", "explanation": "string" }],
  "bns_sections": [{ "section_number": "string", "title": "string", "explanation": "string" }],
  "legal_signal_checklist": { "signal_name": true },
  "procedural_guidance": {
    "possible_actions": ["string"],
    "paths_explained": { "police_route": "string", "court_route": "string", "non_legal_resolution": "string" }
  },
  "missing_information": ["string"],
  "limitations": ["string"]
}
Output MUST be valid JSON only.
DO NOT add markdown, headings, or commentary.`,
		rawText, refinedText, formatMatches(ipcResult), formatMatches(bnsResult))
}
