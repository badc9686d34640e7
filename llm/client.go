// Package llm adapts the external reasoning service. The rest of the system
// treats it as an opaque capability: one prompt string in, one parsed JSON
// object out.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Completer is the contract every backend satisfies. CompleteJSON sends one
// prompt and returns the response body as a JSON object, with any
// surrounding markdown code fences already stripped. Calls run under the
// client's timeout and are never retried.
type Completer interface {
	CompleteJSON(ctx context.Context, prompt string) (json.RawMessage, error)
}

const defaultTimeout = 60 * time.Second

// NewCompleterFromEnv selects a backend from LLM_PROVIDER ("openrouter" by
// default, or "gemini")
func NewCompleterFromEnv(ctx context.Context) (Completer, error) {
	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = "openrouter"
	}

	switch provider {
	case "openrouter":
		return NewOpenRouterClientFromEnv()
	case "gemini":
		return NewGeminiClientFromEnv(ctx)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", provider)
	}
}

func timeoutFromEnv() time.Duration {
	raw := os.Getenv("LLM_TIMEOUT_SECONDS")
	if raw == "" {
		return defaultTimeout
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return defaultTimeout
	}
	return time.Duration(secs) * time.Second
}

// extractJSON strips markdown code fences the model may emit despite being
// told not to, then verifies the remainder is a JSON object.
func extractJSON(content string) (json.RawMessage, error) {
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")
	content = strings.TrimSpace(content)

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &obj); err != nil {
		return nil, fmt.Errorf("model response is not a JSON object: %w", err)
	}

	return json.RawMessage(content), nil
}
