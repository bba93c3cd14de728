package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stayflowhq/stayflow/pkg/config"
)

// ErrUnavailable is returned when the completion capability is not
// configured or cannot be reached. Callers downgrade to their deterministic
// fallback on any error from this package; ErrUnavailable just names the
// permanent case.
var ErrUnavailable = errors.New("completion capability unavailable")

// ChatMessage is one role-tagged instruction/content pair
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer is the completion capability contract: a strict-JSON chat
// completion. Implementations must treat a non-2xx status, transport error
// or empty choice list as a capability error.
type Completer interface {
	CompleteJSON(ctx context.Context, messages []ChatMessage) (string, error)
	Model() string
}

// Client is a minimal client for an OpenAI-compatible chat completion API
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	client      *http.Client
}

// NewCompleter builds the completion capability from config. A missing API
// key yields the disabled variant, which always reports ErrUnavailable so
// the pipeline runs entirely on fallbacks.
func NewCompleter(cfg *config.CompletionConfig) Completer {
	if cfg == nil || cfg.APIKey == "" {
		return Disabled{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		client:      &http.Client{Timeout: timeout},
	}
}

// chatRequest is the shape for chat completion requests
type chatRequest struct {
	Model          string          `json:"model,omitempty"`
	Messages       []ChatMessage   `json:"messages,omitempty"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// chatResponse is a minimal response shape
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Model returns the configured model identifier
func (c *Client) Model() string {
	return c.model
}

// CompleteJSON sends the messages and returns the assistant content. The
// request carries a strict JSON-object directive; parsing the content is the
// caller's concern.
func (c *Client) CompleteJSON(ctx context.Context, messages []ChatMessage) (string, error) {
	reqBody := chatRequest{
		Model:          c.model,
		Messages:       messages,
		Temperature:    c.temperature,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := c.baseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("completion service returned status %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response from completion service")
	}
	return cr.Choices[0].Message.Content, nil
}

// Disabled is the null-object completer used when no API key is configured
type Disabled struct{}

// Model implements Completer
func (Disabled) Model() string { return "rule-based" }

// CompleteJSON implements Completer; it always fails so callers fall back
func (Disabled) CompleteJSON(ctx context.Context, messages []ChatMessage) (string, error) {
	return "", ErrUnavailable
}
