package ai

import "context"

// Client is the text-generation surface the suggestion service depends on.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
