package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient calls the Gemini API through the official SDK, asking for a
// JSON response MIME type. Models occasionally emit code fences anyway, so
// the response still goes through extractJSON.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a Gemini-backed completer
func NewGeminiClient(client *genai.Client, model string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		client:  client,
		model:   model,
		timeout: timeout,
	}
}

// NewGeminiClientFromEnv creates the client from GEMINI_API_KEY and
// GEMINI_MODEL environment variables
func NewGeminiClientFromEnv(ctx context.Context) (*GeminiClient, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-flash"
	}

	log.Println("Gemini client initialized")
	return NewGeminiClient(client, model, timeoutFromEnv()), nil
}

// CompleteJSON sends the prompt and returns the candidate text as a parsed
// JSON object
func (c *GeminiClient) CompleteJSON(ctx context.Context, prompt string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	model := c.client.GenerativeModel(c.model)
	model.GenerationConfig.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("API returned no candidates")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	if text.Len() == 0 {
		return nil, errors.New("API returned empty content")
	}

	return extractJSON(text.String())
}
