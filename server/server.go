package server

import (
	"time"

	"helpdesk-server/auth"
	"helpdesk-server/cache"
	"helpdesk-server/confs"
	"helpdesk-server/db"
	"helpdesk-server/entities"
	"helpdesk-server/handlers"
	httpHandler "helpdesk-server/handlers/http"
	"helpdesk-server/middleware"
	"helpdesk-server/repositories"
	"helpdesk-server/services"
	"helpdesk-server/usecases"
	"helpdesk-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Register the chat providers.
	_ "helpdesk-server/llm/builtin"
	_ "helpdesk-server/llm/openai"
	_ "helpdesk-server/llm/openrouter"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg *confs.Config
}

func NewServer(database db.Database, cfg *confs.Config) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
		cfg: cfg,
	}
}

func (s *Server) Start() error {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // the widget is embedded on customer sites
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserGormRepository(s.db)
	roleRepo := repositories.NewRoleGormRepository(s.db)
	knowledgeRepo := repositories.NewKnowledgeGormRepository(s.db)
	convRepo := repositories.NewConversationGormRepository(s.db)
	settingsRepo := repositories.NewSettingsGormRepository(s.db)
	customModelRepo := repositories.NewCustomModelGormRepository(s.db)

	// Live widget sessions feed the stats endpoints
	sessions := cache.NewSessionCache(time.Duration(s.cfg.Chat.SessionTTLMinutes) * time.Minute)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo)
	roleUseCase := usecases.NewRoleUseCase(roleRepo)
	knowledgeUseCase := usecases.NewKnowledgeUseCase(knowledgeRepo)
	chatUseCase := usecases.NewChatUseCase(convRepo, settingsRepo, knowledgeUseCase, sessions)
	settingsUseCase := usecases.NewSettingsUseCase(settingsRepo, customModelRepo)
	backupUseCase := usecases.NewBackupUseCase(userRepo, roleRepo, knowledgeRepo, convRepo, settingsRepo, customModelRepo)
	statsUseCase := usecases.NewStatsUseCase(userRepo, knowledgeRepo, convRepo, sessions)

	// Background services
	mailer := services.NewMailer(settingsRepo)
	backupRunner := services.NewBackupRunner(backupUseCase, settingsUseCase, s.cfg.BackupDir)
	backupRunner.Start()

	// Auth plumbing
	jwtManager := auth.NewJWTManager(s.cfg.JWTSecret, 12*time.Hour)
	authRequired := middleware.Auth(jwtManager, userRepo)

	// Initialize handlers
	loginHandler := httpHandler.NewLoginHandler(userUseCase, jwtManager)
	userHandler := httpHandler.NewUserHandler(userUseCase)
	roleHandler := httpHandler.NewRoleHandler(roleUseCase)
	knowledgeHandler := httpHandler.NewKnowledgeHandler(knowledgeUseCase)
	chatHandler := httpHandler.NewChatHandler(chatUseCase)
	logsHandler := httpHandler.NewLogsHandler(chatUseCase)
	configHandler := httpHandler.NewConfigHandler(settingsUseCase, mailer)
	customModelHandler := httpHandler.NewCustomModelHandler(settingsUseCase)
	backupHandler := httpHandler.NewBackupHandler(backupUseCase, backupRunner)
	statsHandler := httpHandler.NewStatsHandler(statsUseCase)

	// WebSocket manager and handler
	manager := ws.NewManager()
	chatWSHandler := handlers.NewChatWSHandler(manager, chatUseCase)

	// Setup API routes
	api := s.app.Group("/api")
	{
		// Public routes
		api.POST("/login", loginHandler.Login)
		api.GET("/setup/status", loginHandler.SetupStatus)
		api.POST("/setup/init", loginHandler.SetupInit)
		api.GET("/config/company", configHandler.GetCompanyInfo)

		// Visitor chat routes (the widget runs unauthenticated)
		api.POST("/chat/start", chatHandler.StartChat)
		api.POST("/chat", chatHandler.Ask)

		// Dashboard users with the use_chat capability can try the bot
		// without leaving a trace in the logs.
		api.POST("/chat/preview", authRequired, middleware.RequireCapability(roleRepo, entities.CapUseChat), chatHandler.Preview)
		api.POST("/logs/:id/feedback", logsHandler.SetFeedback)

		// User management
		users := api.Group("/users", authRequired, middleware.RequireCapability(roleRepo, entities.CapManageUsers))
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Role permissions
		roles := api.Group("/roles", authRequired, middleware.RequireCapability(roleRepo, entities.CapManageRoles))
		{
			roles.GET("", roleHandler.GetRoles)
			roles.PUT("/:role", roleHandler.UpdateRole)
		}

		// Knowledge base
		kb := api.Group("/kb", authRequired)
		{
			kb.GET("", middleware.RequireCapability(roleRepo, entities.CapViewKnowledge), knowledgeHandler.ListEntries)
			kb.GET("/:id", middleware.RequireCapability(roleRepo, entities.CapViewKnowledge), knowledgeHandler.GetEntry)
			kb.POST("", middleware.RequireCapability(roleRepo, entities.CapManageKnowledge), knowledgeHandler.CreateEntry)
			kb.PUT("/:id", middleware.RequireCapability(roleRepo, entities.CapManageKnowledge), knowledgeHandler.UpdateEntry)
			kb.DELETE("/:id", middleware.RequireCapability(roleRepo, entities.CapManageKnowledge), knowledgeHandler.DeleteEntry)
		}

		// Chat logs
		logs := api.Group("/logs", authRequired)
		{
			logs.GET("", middleware.RequireCapability(roleRepo, entities.CapViewLogs), logsHandler.ListConversations)
			logs.GET("/:id", middleware.RequireCapability(roleRepo, entities.CapViewLogs), logsHandler.GetConversation)
			logs.DELETE("/:id", middleware.RequireCapability(roleRepo, entities.CapDeleteLogs), logsHandler.DeleteConversation)
		}

		// Stats
		stats := api.Group("/stats", authRequired, middleware.RequireCapability(roleRepo, entities.CapViewStats))
		{
			stats.GET("/overview", statsHandler.GetOverview)
			stats.GET("/daily", statsHandler.GetDaily)
		}

		// Configuration singletons
		cfgGroup := api.Group("/config", authRequired)
		{
			cfgGroup.GET("/model", middleware.RequireCapability(roleRepo, entities.CapManageModelConfig), configHandler.GetModelConfig)
			cfgGroup.PUT("/model", middleware.RequireCapability(roleRepo, entities.CapManageModelConfig), configHandler.SaveModelConfig)
			cfgGroup.PUT("/company", middleware.RequireCapability(roleRepo, entities.CapManageCompany), configHandler.SaveCompanyInfo)
			cfgGroup.GET("/panel", middleware.RequireCapability(roleRepo, entities.CapManagePanel), configHandler.GetPanelConfig)
			cfgGroup.PUT("/panel", middleware.RequireCapability(roleRepo, entities.CapManagePanel), configHandler.SavePanelConfig)
			cfgGroup.GET("/smtp", middleware.RequireCapability(roleRepo, entities.CapManageSMTP), configHandler.GetSmtpConfig)
			cfgGroup.PUT("/smtp", middleware.RequireCapability(roleRepo, entities.CapManageSMTP), configHandler.SaveSmtpConfig)
			cfgGroup.POST("/smtp/test", middleware.RequireCapability(roleRepo, entities.CapManageSMTP), configHandler.TestSmtp)
			cfgGroup.GET("/backup", middleware.RequireCapability(roleRepo, entities.CapManageBackups), configHandler.GetBackupSchedule)
			cfgGroup.PUT("/backup", middleware.RequireCapability(roleRepo, entities.CapManageBackups), configHandler.SaveBackupSchedule)
			cfgGroup.GET("/gdrive", middleware.RequireCapability(roleRepo, entities.CapManageBackups), configHandler.GetGoogleDriveConfig)
			cfgGroup.PUT("/gdrive", middleware.RequireCapability(roleRepo, entities.CapManageBackups), configHandler.SaveGoogleDriveConfig)

			// Custom OpenRouter model catalog
			cfgGroup.GET("/models", middleware.RequireCapability(roleRepo, entities.CapManageCustomModels), customModelHandler.ListModels)
			cfgGroup.POST("/models", middleware.RequireCapability(roleRepo, entities.CapManageCustomModels), customModelHandler.AddModel)
			cfgGroup.DELETE("/models/:model_id", middleware.RequireCapability(roleRepo, entities.CapManageCustomModels), customModelHandler.DeleteModel)
		}

		// Backup import/export
		backup := api.Group("/backup", authRequired, middleware.RequireCapability(roleRepo, entities.CapManageBackups))
		{
			backup.GET("/export", backupHandler.Export)
			backup.POST("/restore", backupHandler.Restore)
			backup.POST("/run", backupHandler.RunScheduled)
		}

		// WebSocket-related HTTP endpoints
		api.GET("/chat/connected", authRequired, middleware.RequireCapability(roleRepo, entities.CapViewLogs), chatWSHandler.GetConnectedSessions)
	}

	s.app.GET("/ws/chat", chatWSHandler.HandleChatWS)

	return s.app.Run(s.cfg.Addr())
}
