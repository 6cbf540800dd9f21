package httpHandler

import (
	"errors"
	"helpdesk-server/llm"
	"helpdesk-server/middleware"
	"helpdesk-server/usecases"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ChatHandler is the visitor-facing chat surface. Its widget routes are
// public; Preview is the authenticated dashboard counterpart.
type ChatHandler struct {
	useCase *usecases.ChatUseCase
}

func NewChatHandler(useCase *usecases.ChatUseCase) *ChatHandler {
	return &ChatHandler{useCase: useCase}
}

type startChatRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type askRequest struct {
	ConversationID string `json:"conversation_id" binding:"required"`
	Question       string `json:"question" binding:"required"`
}

// StartChat handles POST /api/chat/start
func (h *ChatHandler) StartChat(c *gin.Context) {
	var req startChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	conv, err := h.useCase.StartConversation(req.Username, req.Name, req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start conversation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": conv})
}

// Ask handles POST /api/chat
func (h *ChatHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	answer, err := h.useCase.Ask(c.Request.Context(), req.ConversationID, req.Question)
	if err != nil {
		var llmErr *llm.Error
		if errors.As(err, &llmErr) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error": llmErr.Message,
				"code":  llmErr.Code,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": answer})
}

type previewRequest struct {
	Question string `json:"question" binding:"required"`
}

// Preview handles POST /api/chat/preview. Dashboard users try the
// configured model against the current knowledge base; nothing is kept.
func (h *ChatHandler) Preview(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	answer, err := h.useCase.Preview(c.Request.Context(), actor.Username, req.Question)
	if err != nil {
		var llmErr *llm.Error
		if errors.As(err, &llmErr) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error": llmErr.Message,
				"code":  llmErr.Code,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"answer": answer}})
}
