package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONStripsCodeFences(t *testing.T) {
	payload, err := extractJSON("```json\n{\"key\": \"value\"}\n```")

	require.NoError(t, err)
	assert.JSONEq(t, `{"key": "value"}`, string(payload))
}

func TestExtractJSONPlainObject(t *testing.T) {
	payload, err := extractJSON(`{"a": 1}`)

	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1}`, string(payload))
}

func TestExtractJSONRejectsNonJSON(t *testing.T) {
	_, err := extractJSON("I am sorry, I cannot answer that.")

	assert.Error(t, err)
}

func TestExtractJSONRejectsJSONArray(t *testing.T) {
	_, err := extractJSON(`[1, 2, 3]`)

	assert.Error(t, err)
}

func openRouterTestServer(t *testing.T, handler http.HandlerFunc) *OpenRouterClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewOpenRouterClient(server.URL, "test-key", "test-model", 5*time.Second)
}

func TestOpenRouterCompleteJSON(t *testing.T) {
	client := openRouterTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"original_language\":\"Hindi\",\"english_refined_query\":\"theft of cash\"}"}}]}`))
	})

	payload, err := client.CompleteJSON(context.Background(), "normalize this")

	require.NoError(t, err)
	assert.JSONEq(t, `{"original_language":"Hindi","english_refined_query":"theft of cash"}`, string(payload))
}

func TestOpenRouterCompleteJSONFencedContent(t *testing.T) {
	client := openRouterTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"` + "```json\\n{\\\"ok\\\": true}\\n```" + `"}}]}`))
	})

	payload, err := client.CompleteJSON(context.Background(), "prompt")

	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(payload))
}

func TestOpenRouterCompleteJSONAPIError(t *testing.T) {
	client := openRouterTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`rate limited`))
	})

	_, err := client.CompleteJSON(context.Background(), "prompt")

	assert.Error(t, err)
}

func TestOpenRouterCompleteJSONNoChoices(t *testing.T) {
	client := openRouterTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.CompleteJSON(context.Background(), "prompt")

	assert.Error(t, err)
}

func TestOpenRouterCompleteJSONNonJSONContent(t *testing.T) {
	client := openRouterTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"not json at all"}}]}`))
	})

	_, err := client.CompleteJSON(context.Background(), "prompt")

	assert.Error(t, err)
}
