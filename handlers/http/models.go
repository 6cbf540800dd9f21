package httpHandler

import (
	"helpdesk-server/entities"
	"helpdesk-server/usecases"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CustomModelHandler manages the user-defined OpenRouter model catalog.
type CustomModelHandler struct {
	useCase *usecases.SettingsUseCase
}

func NewCustomModelHandler(useCase *usecases.SettingsUseCase) *CustomModelHandler {
	return &CustomModelHandler{useCase: useCase}
}

// ListModels handles GET /api/config/models
func (h *CustomModelHandler) ListModels(c *gin.Context) {
	models, err := h.useCase.ListCustomModels()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve custom models"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": models, "count": len(models)})
}

// AddModel handles POST /api/config/models
func (h *CustomModelHandler) AddModel(c *gin.Context) {
	var model entities.CustomModel
	if err := c.ShouldBindJSON(&model); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := h.useCase.AddCustomModel(&model); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Model added successfully", "data": model})
}

// DeleteModel handles DELETE /api/config/models/:model_id
func (h *CustomModelHandler) DeleteModel(c *gin.Context) {
	if err := h.useCase.DeleteCustomModel(c.Param("model_id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Model deleted successfully"})
}
