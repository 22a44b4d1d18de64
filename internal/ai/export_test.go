package ai

import (
	"context"
	"log/slog"

	"github.com/openai/openai-go/v3"
	"github.com/yuin/goldmark"
)

// NewScriptedClient builds a Client whose completions come from fn instead
// of the network.
func NewScriptedClient(fn func(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error), logger *slog.Logger) *Client {
	return &Client{complete: fn, markdown: goldmark.New(), logger: logger}
}
