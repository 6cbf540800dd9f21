// Package llm dispatches chat completions to a provider selected at
// runtime by the stored model configuration. Providers register themselves
// from their package init, mirroring how the admin panel lets the model
// backend be swapped without restarts.
package llm

import (
	"context"
	"fmt"
)

// Config is the provider-facing slice of the stored model configuration.
type Config struct {
	ModelID     string
	APIKey      string
	BaseURL     string
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// Message is one line of the prompt sent to a provider.
type Message struct {
	Role    string // system | user | assistant
	Content string
}

// Provider generates an answer for an assembled prompt.
type Provider interface {
	Initialize() error
	Generate(ctx context.Context, messages []Message) (string, error)
}

// Error categories surfaced to the chat widget.
const (
	CodeMissingKey  = "missing_key"
	CodeInvalidKey  = "invalid_key"
	CodeRateLimited = "rate_limited"
	CodeBlocked     = "blocked"
	CodeBadRequest  = "bad_request"
	CodeUnknown     = "unknown"
)

// Error is a categorized provider failure.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError builds a categorized error.
func NewError(code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Factory builds a provider from a config.
type Factory func(config *Config) (Provider, error)

var factories = make(map[string]Factory)

// Register registers a provider factory under a name. Called from provider
// package init functions.
func Register(name string, factory Factory) {
	factories[name] = factory
}

// Create builds and initializes the named provider.
func Create(name string, config *Config) (Provider, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, NewError(CodeBadRequest, "unknown chat provider: %s", name)
	}
	provider, err := factory(config)
	if err != nil {
		return nil, err
	}
	if err := provider.Initialize(); err != nil {
		return nil, err
	}
	return provider, nil
}
