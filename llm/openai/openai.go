// Package openai implements the llm.Provider backed by the OpenAI chat
// completions API. It doubles as the transport for any OpenAI-compatible
// endpoint via Config.BaseURL.
package openai

import (
	"context"
	"errors"
	"helpdesk-server/llm"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type Provider struct {
	config *llm.Config
	client *openai.Client
}

func init() {
	llm.Register("openai", NewProvider)
}

func NewProvider(config *llm.Config) (llm.Provider, error) {
	return &Provider{config: config}, nil
}

func (p *Provider) Initialize() error {
	if p.config.APIKey == "" {
		return llm.NewError(llm.CodeMissingKey, "no API key configured for model %s", p.config.ModelID)
	}
	clientConfig := openai.DefaultConfig(p.config.APIKey)
	if p.config.BaseURL != "" {
		clientConfig.BaseURL = p.config.BaseURL
	}
	p.client = openai.NewClientWithConfig(clientConfig)
	return nil
}

func (p *Provider) Generate(ctx context.Context, messages []llm.Message) (string, error) {
	chatMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		chatMessages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.config.ModelID,
		Messages:    chatMessages,
		Temperature: float32(p.config.Temperature),
		TopP:        float32(p.config.TopP),
		MaxTokens:   p.config.MaxTokens,
	})
	if err != nil {
		return "", categorize(err)
	}
	if len(resp.Choices) == 0 {
		return "", llm.NewError(llm.CodeUnknown, "provider returned no choices")
	}

	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonContentFilter {
		return "", llm.NewError(llm.CodeBlocked, "response blocked by provider content filter")
	}
	return choice.Message.Content, nil
}

// categorize maps API failures onto the fixed error categories the chat
// widget understands.
func categorize(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 401, 403:
			return llm.NewError(llm.CodeInvalidKey, "provider rejected the API key")
		case 429:
			return llm.NewError(llm.CodeRateLimited, "provider rate limit reached")
		case 400:
			if strings.Contains(strings.ToLower(apiErr.Message), "content") {
				return llm.NewError(llm.CodeBlocked, "request blocked by provider content policy")
			}
			return llm.NewError(llm.CodeBadRequest, "provider rejected the request: %s", apiErr.Message)
		}
		return llm.NewError(llm.CodeUnknown, "provider error: %s", apiErr.Message)
	}
	return llm.NewError(llm.CodeUnknown, "provider call failed: %v", err)
}
