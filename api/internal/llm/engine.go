package llm

import "context"

// Engine answers a single-turn prompt with the raw text of the model's first
// candidate. An empty answer with a nil error means the upstream replied but
// carried no usable text.
type Engine interface {
	Name() string
	GetModel() string
	Ask(ctx context.Context, prompt string) (string, error)
}
