package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/msomdec/mathpractice/internal/domain"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	DefaultModel   = "gemini-2.0-flash"
)

// Client generates text through an OpenAI-compatible chat completions
// endpoint (Gemini, Ollama, LM Studio, vLLM, etc.).
type Client struct {
	baseURL string       // e.g. "https://generativelanguage.googleapis.com/v1beta/openai"
	apiKey  string       // sent as a bearer token when set
	model   string       // e.g. "gemini-2.0-flash"
	client  *http.Client // reused across calls
}

// Compile-time check: *Client satisfies domain.QuestionGenerator.
var _ domain.QuestionGenerator = (*Client)(nil)

// GenerateError is returned when the model could not produce a reply, so
// callers can tell an unreachable model from a bad request of their own.
type GenerateError struct {
	Reason  string
	Wrapped error
}

func (e *GenerateError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("generation failed: %s", e.Reason)
}

func (e *GenerateError) Unwrap() error {
	return e.Wrapped
}

// NewClient creates a client for the given endpoint. Empty baseURL and model
// fall back to DefaultBaseURL and DefaultModel.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends prompt as a single user message and returns the reply text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &GenerateError{Reason: "request failed", Wrapped: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &GenerateError{Reason: fmt.Sprintf("model returned status %d", resp.StatusCode)}
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return "", &GenerateError{Reason: "invalid response body", Wrapped: err}
	}
	if len(chat.Choices) == 0 {
		return "", &GenerateError{Reason: "model returned no choices"}
	}

	content := strings.TrimSpace(chat.Choices[0].Message.Content)
	if content == "" {
		return "", &GenerateError{Reason: "model returned empty content"}
	}
	return content, nil
}
