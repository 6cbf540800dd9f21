// Package builtin is the no-network fallback provider. It answers with a
// canned acknowledgement so the chat widget stays usable before any API
// key is configured.
package builtin

import (
	"context"
	"helpdesk-server/llm"
	"strings"
)

const cannedAnswer = "Thanks for reaching out! A member of our support team " +
	"will get back to you shortly. In the meantime, feel free to browse our " +
	"help articles or leave more details here."

type Provider struct{}

func init() {
	llm.Register("builtin", NewProvider)
}

func NewProvider(config *llm.Config) (llm.Provider, error) {
	return &Provider{}, nil
}

func (p *Provider) Initialize() error { return nil }

func (p *Provider) Generate(ctx context.Context, messages []llm.Message) (string, error) {
	// Echo a greeting-aware canned line; no external call is made.
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			q := strings.ToLower(messages[i].Content)
			if strings.Contains(q, "hello") || strings.Contains(q, "hi ") || q == "hi" {
				return "Hello! " + cannedAnswer, nil
			}
			break
		}
	}
	return cannedAnswer, nil
}
