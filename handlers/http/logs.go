package httpHandler

import (
	"helpdesk-server/usecases"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// LogsHandler exposes stored conversations to the admin dashboard.
type LogsHandler struct {
	useCase *usecases.ChatUseCase
}

func NewLogsHandler(useCase *usecases.ChatUseCase) *LogsHandler {
	return &LogsHandler{useCase: useCase}
}

// ListConversations handles GET /api/logs?page=&limit=
func (h *LogsHandler) ListConversations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	convs, total, err := h.useCase.ListConversations(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve chat logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  convs,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetConversation handles GET /api/logs/:id
func (h *LogsHandler) GetConversation(c *gin.Context) {
	conv, err := h.useCase.GetConversation(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": conv})
}

// DeleteConversation handles DELETE /api/logs/:id
func (h *LogsHandler) DeleteConversation(c *gin.Context) {
	if err := h.useCase.DeleteConversation(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation deleted successfully"})
}

type feedbackRequest struct {
	MessageID string `json:"message_id" binding:"required"`
	Feedback  string `json:"feedback" binding:"required"`
}

// SetFeedback handles POST /api/logs/:id/feedback. Left public so the
// widget can tag answers without a dashboard session.
func (h *LogsHandler) SetFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.useCase.Feedback(c.Param("id"), req.MessageID, req.Feedback); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback recorded"})
}
