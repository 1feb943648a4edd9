package checkers

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// CompletionChecker verifies the chat-completion endpoint is usable as configured.
// It does not call the endpoint: every call costs a model completion.
type CompletionChecker struct {
	endpoint string
	model    string
}

func NewCompletionChecker(endpoint, model string) *CompletionChecker {
	return &CompletionChecker{endpoint: endpoint, model: model}
}

func (c *CompletionChecker) Name() string { return "llm" }

func (c *CompletionChecker) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: want an absolute http(s) URL", c.endpoint)
	}
	if c.model == "" {
		return errors.New("model is not configured")
	}
	return nil
}
