package handlers

import (
	"net/http"

	"legal-backend/models"
	"legal-backend/service"

	"github.com/gin-gonic/gin"
)

// QuestionHandler handles HTTP requests for cross-examination flashcards
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// QuestionRequest represents the request body for POST /questions/generate
type QuestionRequest struct {
	CaseData models.CaseAnalysis `json:"case_data" binding:"required"`
}

// Generate handles POST /questions/generate
func (h *QuestionHandler) Generate(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	cards, err := h.questionService.GenerateFlashcards(c.Request.Context(), &req.CaseData)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}
