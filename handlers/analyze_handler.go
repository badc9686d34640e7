package handlers

import (
	"net/http"

	"legal-backend/service"

	"github.com/gin-gonic/gin"
)

// AnalyzeHandler handles HTTP requests for legal analysis
type AnalyzeHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(analysisService *service.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{analysisService: analysisService}
}

// AnalyzeRequest represents the request body for POST /analyze
type AnalyzeRequest struct {
	Query string `json:"query" binding:"required"`
}

// Analyze handles POST /analyze
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	analysis, err := h.analysisService.Analyze(c.Request.Context(), req.Query)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}
