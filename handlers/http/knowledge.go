package httpHandler

import (
	"helpdesk-server/entities"
	"helpdesk-server/middleware"
	"helpdesk-server/usecases"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type KnowledgeHandler struct {
	useCase *usecases.KnowledgeUseCase
}

func NewKnowledgeHandler(useCase *usecases.KnowledgeUseCase) *KnowledgeHandler {
	return &KnowledgeHandler{useCase: useCase}
}

// ListEntries handles GET /api/kb?page=&limit=
func (h *KnowledgeHandler) ListEntries(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	entries, total, err := h.useCase.ListEntries(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve knowledge base"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  entries,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetEntry handles GET /api/kb/:id
func (h *KnowledgeHandler) GetEntry(c *gin.Context) {
	entry, err := h.useCase.GetEntry(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "knowledge entry not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entry})
}

// CreateEntry handles POST /api/kb
func (h *KnowledgeHandler) CreateEntry(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	var entry entities.KnowledgeEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.useCase.CreateEntry(&entry, actor.Username); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Knowledge entry created successfully",
		"data":    entry,
	})
}

// UpdateEntry handles PUT /api/kb/:id
func (h *KnowledgeHandler) UpdateEntry(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	var updates entities.KnowledgeEntry
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.useCase.UpdateEntry(c.Param("id"), &updates, actor.Username)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Knowledge entry updated successfully",
		"data":    entry,
	})
}

// DeleteEntry handles DELETE /api/kb/:id
func (h *KnowledgeHandler) DeleteEntry(c *gin.Context) {
	if err := h.useCase.DeleteEntry(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Knowledge entry deleted successfully"})
}
