package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"legal-backend/llm"
	"legal-backend/models"
	"legal-backend/search"
	"legal-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	payload json.RawMessage
	err     error
}

func (f *fakeCompleter) CompleteJSON(ctx context.Context, prompt string) (json.RawMessage, error) {
	return f.payload, f.err
}

const analysisPayload = `{
	"case_id": "from-the-model",
	"normalized_query": {"original_text": "", "language": "", "english_version": ""},
	"plain_language_summary": "The described situation is treated as theft.",
	"ipc_sections": [],
	"bns_sections": [],
	"legal_signal_checklist": {"property_taken": true},
	"procedural_guidance": {
		"possible_actions": ["File an FIR"],
		"paths_explained": {"police_route": "a", "court_route": "b", "non_legal_resolution": "c"}
	},
	"missing_information": [],
	"limitations": []
}`

func newTestRouter(completer llm.Completer) *gin.Engine {
	gin.SetMode(gin.TestMode)

	retriever := search.NewRetriever(
		search.NewIndex(models.StatuteCorpus{Kind: models.CodeIPC}),
		search.NewIndex(models.StatuteCorpus{Kind: models.CodeBNS}),
	)
	analysisService := service.NewAnalysisService(
		service.WithNormalizer(service.NewNormalizerService(completer)),
		service.WithRetriever(retriever),
		service.WithCompleter(completer),
	)

	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "legal-backend"})
	})
	r.POST("/analyze", NewAnalyzeHandler(analysisService).Analyze)
	return r
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(&fakeCompleter{err: errors.New("unused")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "healthy", "service": "legal-backend"}`, w.Body.String())
}

func TestAnalyzeEndpoint(t *testing.T) {
	r := newTestRouter(&fakeCompleter{payload: json.RawMessage(analysisPayload)})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"query": "someone took cash from my shop"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var analysis models.CaseAnalysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
	assert.NotEqual(t, "from-the-model", analysis.CaseID)
	assert.Equal(t, "someone took cash from my shop", analysis.NormalizedQuery.OriginalText)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAnalyzeEndpointRejectsMissingQuery(t *testing.T) {
	r := newTestRouter(&fakeCompleter{payload: json.RawMessage(analysisPayload)})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
}

func TestAnalyzeEndpointSurfacesExternalFailure(t *testing.T) {
	r := newTestRouter(&fakeCompleter{err: errors.New("upstream down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"query": "theft"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "EXTERNAL_SERVICE_ERROR")
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(&fakeCompleter{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
