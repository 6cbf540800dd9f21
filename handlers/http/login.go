package httpHandler

import (
	"helpdesk-server/auth"
	"helpdesk-server/usecases"
	"net/http"

	"github.com/gin-gonic/gin"
)

type LoginHandler struct {
	useCase    *usecases.UserUseCase
	jwtManager *auth.JWTManager
}

func NewLoginHandler(useCase *usecases.UserUseCase, jwtManager *auth.JWTManager) *LoginHandler {
	return &LoginHandler{useCase: useCase, jwtManager: jwtManager}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/login
func (h *LoginHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.useCase.Login(req.Username, req.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	token, err := h.jwtManager.Generate(user.Username, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

type SetupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// SetupStatus handles GET /api/setup/status
func (h *LoginHandler) SetupStatus(c *gin.Context) {
	needed, err := h.useCase.NeedsSetup()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check setup state"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"needs_setup": needed})
}

// SetupInit handles POST /api/setup/init. Works only while no account
// exists; afterwards it always fails.
func (h *LoginHandler) SetupInit(c *gin.Context) {
	var req SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	user, err := h.useCase.Bootstrap(req.Username, req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Initial admin created successfully",
		"data":    user,
	})
}
