package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/artem13815/roadmap/pkg/logger"
)

const (
	DefaultBaseURL = "https://phi.us.gaianet.network/v1"
	DefaultModel   = "llama"

	// DefaultSystemPrompt is sent as the system message when none is configured.
	DefaultSystemPrompt = "You are a JSON-only output assistant. You must only return valid, properly formatted JSON without any additional text, explanation, or markdown formatting. Do not use code blocks."
)

// ErrNoChoices is returned when the endpoint answers without any completion.
var ErrNoChoices = errors.New("no choices returned by model")

// Options configures Client. Zero values fall back to the defaults in New.
type Options struct {
	BaseURL      string
	Model        string
	APIKey       string
	SystemPrompt string
	// Timeout bounds one round-trip; zero means no client-side limit.
	Timeout time.Duration
	// Logger receives upstream error bodies; nil discards them.
	Logger *logger.Logger
}

// Client is a minimal OpenAI-compatible chat completions client.
type Client struct {
	BaseURL      string
	Model        string
	SystemPrompt string
	apiKey       string
	httpDo       *http.Client
	log          *logger.Logger
}

func New(opts Options) *Client {
	return NewWithHTTPClient(opts, &http.Client{Timeout: opts.Timeout})
}

// NewWithHTTPClient lets callers supply the transport, e.g. a stub in tests.
func NewWithHTTPClient(opts Options, hc *http.Client) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}
	systemPrompt := strings.TrimSpace(opts.SystemPrompt)
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		BaseURL:      baseURL,
		Model:        model,
		SystemPrompt: systemPrompt,
		apiKey:       opts.APIKey,
		httpDo:       hc,
		log:          log,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionsRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

// Endpoint is the URL chat completions are posted to.
func (c *Client) Endpoint() string {
	return c.BaseURL + "/chat/completions"
}

// Complete sends the prompt as the user message, preceded by the configured
// system message, and returns the first choice's content.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	data, err := json.Marshal(chatCompletionsRequest{
		Model: c.Model,
		Messages: []message{
			{Role: "system", Content: c.SystemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.log.Warn("chat completions rejected",
			"status", resp.StatusCode,
			"endpoint", c.Endpoint(),
			"body", strings.TrimSpace(string(body)),
		)
		return "", fmt.Errorf("chat completions http %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	var out chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode chat completions response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", ErrNoChoices
	}
	return out.Choices[0].Message.Content, nil
}
