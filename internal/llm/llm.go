// Package llm provides the commit-message generation backends and their
// closed error taxonomy.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// Provider identifies a generation backend.
type Provider string

// ProviderGemini is the only supported provider today. Adding a provider
// means adding a variant here and a case in New; callers are unaffected.
const ProviderGemini Provider = "gemini"

// ErrUnsupportedProvider is returned by New for an unrecognized provider.
var ErrUnsupportedProvider = errors.New("unsupported provider")

func (p Provider) String() string {
	return string(p)
}

// Supported reports whether p is a recognized provider.
func (p Provider) Supported() bool {
	switch p {
	case ProviderGemini:
		return true
	default:
		return false
	}
}

// KeyName returns the environment variable holding the provider's API key.
func (p Provider) KeyName() string {
	switch p {
	case ProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return ""
	}
}

// Generator turns a staged diff into a commit message. A successful call
// returns a non-empty message; failures are always a *Error.
type Generator interface {
	GenerateCommitMessage(ctx context.Context, diff string) (string, error)
}

// New builds the generator for the given provider. An empty model selects the
// provider's default.
func New(provider Provider, model, apiKey string) (Generator, error) {
	switch provider {
	case ProviderGemini:
		return newGeminiGenerator(model, apiKey), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
}
