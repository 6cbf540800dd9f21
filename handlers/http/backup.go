package httpHandler

import (
	"helpdesk-server/services"
	"helpdesk-server/usecases"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BackupHandler struct {
	useCase *usecases.BackupUseCase
	runner  *services.BackupRunner
}

func NewBackupHandler(useCase *usecases.BackupUseCase, runner *services.BackupRunner) *BackupHandler {
	return &BackupHandler{useCase: useCase, runner: runner}
}

// Export handles GET /api/backup/export?part=users|kb|logs|config|full
func (h *BackupHandler) Export(c *gin.Context) {
	part := c.DefaultQuery("part", usecases.PartFull)

	data, err := h.useCase.Export(part)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

// Restore handles POST /api/backup/restore. The body is a previously
// exported document; present sections replace stored state wholesale.
func (h *BackupHandler) Restore(c *gin.Context) {
	var data usecases.BackupData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid backup document", "details": err.Error()})
		return
	}

	if err := h.useCase.Restore(&data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Backup restored successfully"})
}

// RunScheduled handles POST /api/backup/run. Manual trigger of the
// scheduled export, writing a file into the backup directory.
func (h *BackupHandler) RunScheduled(c *gin.Context) {
	part := c.DefaultQuery("part", usecases.PartFull)

	path, err := h.runner.Export(part)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Backup written", "path": path})
}
