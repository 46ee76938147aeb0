// Package llm holds the clients for the hosted text-generation models the
// functions delegate to.
package llm

import "context"

// Generator turns a single prompt into generated text.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Factory builds a Generator for one invocation. Every call returns a fresh
// client so no state is shared between requests.
type Factory func(ctx context.Context) (Generator, error)

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
