package usecases

import (
	"context"
	"errors"
	"helpdesk-server/cache"
	"helpdesk-server/entities"
	"helpdesk-server/llm"
	"helpdesk-server/repositories"
	"os"
	"strings"
)

// baseInstruction is prepended to every prompt before the admin-supplied
// instruction and the knowledge base.
const baseInstruction = "You are a friendly customer support assistant. " +
	"Answer using only the company knowledge provided below. If the answer " +
	"is not covered there, say so and offer to connect the visitor with a " +
	"human agent. Keep answers short and polite."

type ChatUseCase struct {
	ConversationRepo repositories.ConversationRepository
	SettingsRepo     repositories.SettingsRepository
	Knowledge        *KnowledgeUseCase
	Sessions         *cache.SessionCache
}

func NewChatUseCase(convRepo repositories.ConversationRepository, settingsRepo repositories.SettingsRepository, knowledge *KnowledgeUseCase, sessions *cache.SessionCache) *ChatUseCase {
	return &ChatUseCase{
		ConversationRepo: convRepo,
		SettingsRepo:     settingsRepo,
		Knowledge:        knowledge,
		Sessions:         sessions,
	}
}

// StartConversation opens a new session with a snapshot of the visitor.
func (uc *ChatUseCase) StartConversation(username, name, email string) (*entities.Conversation, error) {
	conv := &entities.Conversation{
		Username:  username,
		UserName:  name,
		UserEmail: email,
	}
	if err := uc.ConversationRepo.Create(conv); err != nil {
		return nil, err
	}
	uc.Sessions.Touch(conv.ID)
	return conv, nil
}

// Ask appends the visitor's question, dispatches to the configured
// provider and appends the generated answer. The returned message is the
// bot reply. Provider failures come back as categorized *llm.Error values.
func (uc *ChatUseCase) Ask(ctx context.Context, conversationID, question string) (*entities.Message, error) {
	if question == "" {
		return nil, errors.New("question is required")
	}
	conv, err := uc.ConversationRepo.GetByID(conversationID)
	if err != nil {
		return nil, errors.New("conversation not found")
	}

	userMsg := &entities.Message{
		ConversationID: conv.ID,
		Sender:         entities.SenderUser,
		Text:           question,
	}
	if err := uc.ConversationRepo.AppendMessage(userMsg); err != nil {
		return nil, err
	}
	uc.Sessions.AddMessage(conv.ID)

	answer, err := uc.generate(ctx, conv, question)
	if err != nil {
		return nil, err
	}

	botMsg := &entities.Message{
		ConversationID: conv.ID,
		Sender:         entities.SenderBot,
		Text:           answer,
	}
	if err := uc.ConversationRepo.AppendMessage(botMsg); err != nil {
		return nil, err
	}
	uc.Sessions.AddMessage(conv.ID)
	return botMsg, nil
}

// Preview answers a single question in a throwaway conversation so
// dashboard users can try the configured model without polluting the
// chat logs.
func (uc *ChatUseCase) Preview(ctx context.Context, username, question string) (string, error) {
	conv, err := uc.StartConversation(username, "", "")
	if err != nil {
		return "", err
	}
	defer func() { _ = uc.DeleteConversation(conv.ID) }()

	msg, err := uc.Ask(ctx, conv.ID, question)
	if err != nil {
		return "", err
	}
	return msg.Text, nil
}

func (uc *ChatUseCase) generate(ctx context.Context, conv *entities.Conversation, question string) (string, error) {
	cfg, err := uc.SettingsRepo.GetModelConfig()
	if err != nil {
		return "", err
	}
	knowledge, err := uc.Knowledge.AssembleText()
	if err != nil {
		return "", err
	}

	system := baseInstruction
	if cfg.Instruction != "" {
		system += "\n\n" + cfg.Instruction
	}
	if knowledge != "" {
		system += "\n\n--- Company knowledge ---\n" + knowledge
	}

	messages := []llm.Message{{Role: "system", Content: system}}
	for _, m := range conv.Messages {
		role := "user"
		if m.Sender == entities.SenderBot {
			role = "assistant"
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Text})
	}
	messages = append(messages, llm.Message{Role: "user", Content: question})

	provider, err := llm.Create(cfg.Provider, &llm.Config{
		ModelID:     cfg.ModelID,
		APIKey:      apiKeyFor(cfg.Provider),
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
		MaxTokens:   cfg.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	return provider.Generate(ctx, messages)
}

// apiKeyFor resolves the provider's API key from the environment. Keys are
// deliberately not part of the stored model config.
func apiKeyFor(provider string) string {
	switch provider {
	case entities.ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	case entities.ProviderOpenRouter:
		return os.Getenv("OPENROUTER_API_KEY")
	default:
		return ""
	}
}

// Feedback tags a single message of a conversation.
func (uc *ChatUseCase) Feedback(conversationID, messageID, feedback string) error {
	if feedback != entities.FeedbackUp && feedback != entities.FeedbackDown {
		return errors.New("feedback must be up or down")
	}
	return uc.ConversationRepo.SetFeedback(conversationID, messageID, feedback)
}

// ListConversations returns chat logs, newest first, paginated.
func (uc *ChatUseCase) ListConversations(page, limit int) ([]entities.Conversation, int, error) {
	convs, err := uc.ConversationRepo.GetAll()
	if err != nil {
		return nil, 0, err
	}
	return Paginate(convs, page, limit), len(convs), nil
}

// GetConversation returns one conversation with its messages.
func (uc *ChatUseCase) GetConversation(id string) (*entities.Conversation, error) {
	if id == "" {
		return nil, errors.New("conversation id is required")
	}
	return uc.ConversationRepo.GetByID(id)
}

// DeleteConversation removes a conversation and its messages.
func (uc *ChatUseCase) DeleteConversation(id string) error {
	if id == "" {
		return errors.New("conversation id is required")
	}
	if _, err := uc.ConversationRepo.GetByID(id); err != nil {
		return errors.New("conversation not found")
	}
	uc.Sessions.Remove(id)
	return uc.ConversationRepo.Delete(id)
}

// EndSession drops a conversation from the live-session cache without
// touching stored history.
func (uc *ChatUseCase) EndSession(conversationID string) {
	uc.Sessions.Remove(strings.TrimSpace(conversationID))
}
