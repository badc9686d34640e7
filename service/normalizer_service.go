package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"legal-backend/llm"
	"legal-backend/models"
)

// NormalizerService translates regional-language input and reformulates
// layman descriptions into a factual legal-English query
type NormalizerService struct {
	completer llm.Completer
}

// NewNormalizerService creates a normalizer backed by the given completer
func NewNormalizerService(completer llm.Completer) *NormalizerService {
	return &NormalizerService{completer: completer}
}

const normalizePromptTemplate = `You are a legal intake specialist.
Task:
1. Detect the language of the input.
2. Translate/Normalize it into a clear, professional English legal description.
3. Keep it factual and concise.

USER INPUT: %q

OUTPUT JSON FORMAT:
{
  "original_language": "...",
  "english_refined_query": "..."
}`

type normalizeResponse struct {
	OriginalLanguage    string `json:"original_language"`
	EnglishRefinedQuery string `json:"english_refined_query"`
}

// Normalize returns a QueryContext for the raw input. Any failure of the
// external call falls back to passthrough semantics: the pipeline must never
// abort because normalization failed.
func (s *NormalizerService) Normalize(ctx context.Context, rawText string) models.QueryContext {
	fallback := models.QueryContext{
		RawText:          rawText,
		DetectedLanguage: "unknown",
		RefinedText:      rawText,
	}

	payload, err := s.completer.CompleteJSON(ctx, fmt.Sprintf(normalizePromptTemplate, rawText))
	if err != nil {
		log.Printf("Warning: query normalization failed, using raw query: %v", err)
		return fallback
	}

	var resp normalizeResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		log.Printf("Warning: malformed normalization response, using raw query: %v", err)
		return fallback
	}
	if resp.EnglishRefinedQuery == "" {
		return fallback
	}

	language := resp.OriginalLanguage
	if language == "" {
		language = "unknown"
	}

	return models.QueryContext{
		RawText:          rawText,
		DetectedLanguage: language,
		RefinedText:      resp.EnglishRefinedQuery,
	}
}
