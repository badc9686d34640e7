package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"legal-backend/llm"
	"legal-backend/models"
)

// QuestionService generates cross-examination flashcards so a user can
// rehearse how police or opposing counsel would probe their account
type QuestionService struct {
	completer llm.Completer
}

// NewQuestionService creates a new question service
func NewQuestionService(completer llm.Completer) *QuestionService {
	return &QuestionService{completer: completer}
}

// Flashcard is one practice question
type Flashcard struct {
	Category   string `json:"category"`
	Question   string `json:"question"`
	Purpose    string `json:"purpose"`
	Difficulty int    `json:"difficulty"`
}

// FlashcardSet is the response of GenerateFlashcards
type FlashcardSet struct {
	Cards []Flashcard `json:"cards"`
}

// GenerateFlashcards produces 10 progressive questions for the case
func (s *QuestionService) GenerateFlashcards(ctx context.Context, caseData *models.CaseAnalysis) (*FlashcardSet, error) {
	laws := make([]string, 0, len(caseData.IPCSections)+len(caseData.BNSSections))
	for _, sec := range caseData.IPCSections {
		laws = append(laws, sec.Title)
	}
	for _, sec := range caseData.BNSSections {
		laws = append(laws, sec.Title)
	}

	prompt := fmt.Sprintf(`You are a senior Indian Police Officer or a Court Cross-Examiner.
Based on this case context, generate 10 progressive questions to test the user's readiness.

CONTEXT:
Issue: %s
Summary: %s
Laws: %s
Actions: %s

STRUCTURE:
- Questions 1-3: Basic Facts (What happened, when, where?)
- Questions 4-6: Evidence & Consistency (How can you prove this? Why did you do X?)
- Questions 7-9: Credibility & Pressure (The other party says Y, why should we believe you?)
- Question 10: Worst-case / Hardest question.

RULES:
- Output ONLY JSON.
- Do not use markdown backticks.
- Categories: "Basic Fact", "Evidence", "Credibility", "Worst Case".
- Difficulty: 1 to 5.

JSON FORMAT:
{
  "cards": [
    {
      "category": "category_name",
      "question": "The actual question?",
      "purpose": "Why the authority is asking this",
      "difficulty": 1
    }
  ]
}`,
		caseData.NormalizedQuery.EnglishVersion,
		caseData.PlainLanguageSummary,
		strings.Join(laws, ", "),
		strings.Join(caseData.ProceduralGuidance.PossibleActions, "; "))

	payload, err := s.completer.CompleteJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrExternalService, err)
	}

	var set FlashcardSet
	if err := json.Unmarshal(payload, &set); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrSchemaViolation, err)
	}
	if len(set.Cards) == 0 {
		return nil, fmt.Errorf("%w: empty cards list", models.ErrSchemaViolation)
	}

	return &set, nil
}
