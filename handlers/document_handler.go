package handlers

import (
	"net/http"

	"legal-backend/models"
	"legal-backend/service"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles HTTP requests for document suggestion and drafting
type DocumentHandler struct {
	documentService *service.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// DocumentRequest represents the request body for the document endpoints
type DocumentRequest struct {
	CaseData    models.CaseAnalysis `json:"case_data" binding:"required"`
	SelectedDoc string              `json:"selected_doc"`
}

// Suggest handles POST /documents/suggest
func (h *DocumentHandler) Suggest(c *gin.Context) {
	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	suggestions, err := h.documentService.SuggestDocuments(c.Request.Context(), &req.CaseData)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

// Generate handles POST /documents/generate
func (h *DocumentHandler) Generate(c *gin.Context) {
	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if req.SelectedDoc == "" {
		respondError(c, http.StatusBadRequest, "NO_DOCUMENT_SELECTED", "No document type selected")
		return
	}

	doc, err := h.documentService.GenerateDocument(c.Request.Context(), &req.CaseData, req.SelectedDoc)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
