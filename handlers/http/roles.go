package httpHandler

import (
	"errors"
	"helpdesk-server/entities"
	"helpdesk-server/middleware"
	"helpdesk-server/usecases"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	useCase *usecases.RoleUseCase
}

func NewRoleHandler(useCase *usecases.RoleUseCase) *RoleHandler {
	return &RoleHandler{useCase: useCase}
}

// GetRoles handles GET /api/roles
func (h *RoleHandler) GetRoles(c *gin.Context) {
	roles, err := h.useCase.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve roles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": roles})
}

// UpdateRole handles PUT /api/roles/:role
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	var perms entities.RolePermissions
	if err := c.ShouldBindJSON(&perms); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	perms.Role = c.Param("role")

	if err := h.useCase.Update(actor, &perms); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, usecases.ErrForbidden) {
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Role permissions updated successfully",
		"data":    perms,
	})
}
