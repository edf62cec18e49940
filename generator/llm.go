package generator

import "context"

// LLMClient abstracts the language model so the agent can be tested without
// network access.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// LLMSettings carries the basics a concrete client needs.
type LLMSettings struct {
	Model   string
	APIKey  string
	BaseURL string
}
