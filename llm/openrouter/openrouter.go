// Package openrouter routes chat completions through OpenRouter, which
// speaks the OpenAI wire protocol. Model ids come either from the stock
// model config or from the custom model catalog.
package openrouter

import (
	"helpdesk-server/llm"
	openaiprovider "helpdesk-server/llm/openai"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

func init() {
	llm.Register("openrouter", NewProvider)
}

func NewProvider(config *llm.Config) (llm.Provider, error) {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	return openaiprovider.NewProvider(config)
}
