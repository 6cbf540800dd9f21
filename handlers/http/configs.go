package httpHandler

import (
	"helpdesk-server/entities"
	"helpdesk-server/services"
	"helpdesk-server/usecases"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ConfigHandler serves the singleton configuration records. Every PUT
// overwrites the whole record.
type ConfigHandler struct {
	useCase *usecases.SettingsUseCase
	mailer  *services.Mailer
}

func NewConfigHandler(useCase *usecases.SettingsUseCase, mailer *services.Mailer) *ConfigHandler {
	return &ConfigHandler{useCase: useCase, mailer: mailer}
}

// GetModelConfig handles GET /api/config/model
func (h *ConfigHandler) GetModelConfig(c *gin.Context) {
	cfg, err := h.useCase.GetModelConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve model config"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cfg})
}

// SaveModelConfig handles PUT /api/config/model
func (h *ConfigHandler) SaveModelConfig(c *gin.Context) {
	var cfg entities.ModelConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := h.useCase.SaveModelConfig(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Model config saved successfully", "data": cfg})
}

// GetCompanyInfo handles GET /api/config/company (public: the widget
// needs the branding before anyone logs in)
func (h *ConfigHandler) GetCompanyInfo(c *gin.Context) {
	info, err := h.useCase.GetCompanyInfo()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve company info"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": info})
}

// SaveCompanyInfo handles PUT /api/config/company
func (h *ConfigHandler) SaveCompanyInfo(c *gin.Context) {
	var info entities.CompanyInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := h.useCase.SaveCompanyInfo(&info); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company info saved successfully", "data": info})
}

// GetPanelConfig handles GET /api/config/panel
func (h *ConfigHandler) GetPanelConfig(c *gin.Context) {
	cfg, err := h.useCase.GetPanelConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve panel config"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cfg})
}

// SavePanelConfig handles PUT /api/config/panel
func (h *ConfigHandler) SavePanelConfig(c *gin.Context) {
	var cfg entities.PanelConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := h.useCase.SavePanelConfig(&cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Panel config saved successfully", "data": cfg})
}

// GetSmtpConfig handles GET /api/config/smtp. The stored password is
// never echoed back to the dashboard.
func (h *ConfigHandler) GetSmtpConfig(c *gin.Context) {
	cfg, err := h.useCase.GetSmtpConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve SMTP config"})
		return
	}
	cfg.Password = ""
	c.JSON(http.StatusOK, gin.H{"data": cfg})
}

// SaveSmtpConfig handles PUT /api/config/smtp. An empty password keeps
// the stored one.
func (h *ConfigHandler) SaveSmtpConfig(c *gin.Context) {
	var cfg entities.SmtpConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := h.useCase.SaveSmtpConfig(&cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	cfg.Password = ""
	c.JSON(http.StatusOK, gin.H{"message": "SMTP config saved successfully", "data": cfg})
}

type smtpTestRequest struct {
	To string `json:"to" binding:"required"`
}

// TestSmtp handles POST /api/config/smtp/test
func (h *ConfigHandler) TestSmtp(c *gin.Context) {
	var req smtpTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := h.mailer.SendTest(req.To); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Test mail sent to " + req.To})
}

// GetBackupSchedule handles GET /api/config/backup
func (h *ConfigHandler) GetBackupSchedule(c *gin.Context) {
	s, err := h.useCase.GetBackupSchedule()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve backup schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": s})
}

// SaveBackupSchedule handles PUT /api/config/backup
func (h *ConfigHandler) SaveBackupSchedule(c *gin.Context) {
	var s entities.BackupSchedule
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := h.useCase.SaveBackupSchedule(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Backup schedule saved successfully", "data": s})
}

// GetGoogleDriveConfig handles GET /api/config/gdrive
func (h *ConfigHandler) GetGoogleDriveConfig(c *gin.Context) {
	cfg, err := h.useCase.GetGoogleDriveConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve Drive config"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cfg})
}

// SaveGoogleDriveConfig handles PUT /api/config/gdrive
func (h *ConfigHandler) SaveGoogleDriveConfig(c *gin.Context) {
	var cfg entities.GoogleDriveConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := h.useCase.SaveGoogleDriveConfig(&cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Drive config saved successfully", "data": cfg})
}
