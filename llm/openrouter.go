package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultOpenRouterURL = "https://openrouter.ai/api/v1/chat/completions"

const openRouterSystemPrompt = "You are a professional Indian Legal Consultant. " +
	"You only output strictly valid JSON. You never use markdown code blocks or backticks."

// OpenRouterClient calls the OpenRouter chat completions API
type OpenRouterClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewOpenRouterClient creates an OpenRouter-backed completer
func NewOpenRouterClient(baseURL, apiKey, model string, timeout time.Duration) *OpenRouterClient {
	if baseURL == "" {
		baseURL = defaultOpenRouterURL
	}
	return &OpenRouterClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// NewOpenRouterClientFromEnv creates the client from OPENROUTER_API_KEY and
// MODEL_NAME environment variables
func NewOpenRouterClientFromEnv() (*OpenRouterClient, error) {
	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENROUTER_API_KEY not set")
	}

	model := os.Getenv("MODEL_NAME")
	if model == "" {
		model = "xiaomi/mimo-v2-flash:free"
	}

	return NewOpenRouterClient(os.Getenv("OPENROUTER_BASE_URL"), apiKey, model, timeoutFromEnv()), nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error struct {
		Message string `json:"message,omitempty"`
		Code    int    `json:"code,omitempty"`
	} `json:"error,omitempty"`
}

// CompleteJSON sends the prompt with a json_object response-format hint and
// returns the parsed object from the first choice
func (c *OpenRouterClient) CompleteJSON(ctx context.Context, prompt string) (json.RawMessage, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: openRouterSystemPrompt},
			{Role: "user", Content: prompt},
		},
	}
	reqBody.ResponseFormat.Type = "json_object"

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error: %d - %s", resp.StatusCode, string(bodyBytes))
	}

	var apiResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if apiResp.Error.Message != "" {
		return nil, fmt.Errorf("API error: %s (code: %d)", apiResp.Error.Message, apiResp.Error.Code)
	}
	if len(apiResp.Choices) == 0 {
		return nil, errors.New("API returned no choices")
	}

	return extractJSON(apiResp.Choices[0].Message.Content)
}
