// Package openai implements the TextGenerator capability over the
// OpenAI-compatible chat-completions convention. Any endpoint that speaks
// POST {base}/v1/chat/completions works, not just api.openai.com.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/lexidrill/lexidrill-backend/internal/provider"
)

const (
	defaultBaseURL = "https://api.openai.com"
	defaultModel   = "gpt-4o-mini"

	// jsonModeSuffix is appended to the prompt when a schema is requested.
	// The chat-completions convention has no response-schema field, so the
	// instruction plus response_format is the only structural guarantee.
	jsonModeSuffix = "\n\nRespond with valid JSON only. No markdown, no code fences, no commentary."
)

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client. Empty baseURL and model fall back to the
// OpenAI defaults.
func NewClient(baseURL, apiKey, model string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 90 * time.Second},
		log:        logger.With("adapter", "openai"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the prompt as a single user message and returns the first
// choice's content. When schema is non-nil the request asks for JSON mode
// and the prompt gets an explicit valid-JSON instruction.
func (c *Client) Generate(ctx context.Context, prompt string, schema *provider.Schema) (string, error) {
	reqBody := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.7,
	}
	if schema != nil {
		reqBody.Messages[0].Content = prompt + jsonModeSuffix
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("openai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.log.DebugContext(ctx, "chat completion request",
		slog.String("model", c.model),
		slog.Bool("json_mode", schema != nil),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", c.statusError(resp.StatusCode, body)
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("openai: decode json: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("openai: empty choices in response")
	}

	return out.Choices[0].Message.Content, nil
}

// statusError extracts the error body's message field when possible,
// falling back to a generic status-code message.
func (c *Client) statusError(status int, body []byte) error {
	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("openai: %s", apiErr.Error.Message)
	}
	return fmt.Errorf("openai: HTTP %d", status)
}
