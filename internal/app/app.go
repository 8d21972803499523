package app

import (
	"errors"
	"fmt"

	"talentswipe_backend/database"
	"talentswipe_backend/internal/config"
	"talentswipe_backend/internal/email"
	"talentswipe_backend/internal/handlers"
	"talentswipe_backend/internal/llm"
	"talentswipe_backend/internal/logger"
	"talentswipe_backend/internal/middleware"
	"talentswipe_backend/internal/models"
	"talentswipe_backend/internal/proxy"
	"talentswipe_backend/internal/repositories"
	"talentswipe_backend/internal/routes"
	"talentswipe_backend/internal/services"
	"talentswipe_backend/internal/validator"
	"talentswipe_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.Debug = cfg.Server.Env != "production"

	gormDB, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer, gormDB)

	matchingProxy, err := proxy.NewMatchingProxy(cfg.MatchingService.Host, cfg.MatchingService.Port)
	if err != nil {
		logger.Fatal("Failed to initialize matching proxy", "error", err)
	}

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, matchingProxy)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(cfg)
	} else {
		logger.Warn("SMTP is not configured. Outreach emails will be logged, not sent.")
		emailProvider = email.NewLogProvider()
	}

	llmClient := llm.NewClient(cfg)

	userRepo := repositories.NewUserRepository(gormDB)
	interactionRepo := repositories.NewInteractionRepository(gormDB)
	generatedRepo := repositories.NewGeneratedCandidateRepository(gormDB)
	pipelineRepo := repositories.NewPipelineRepository(gormDB)
	candidateRepo := repositories.NewCandidateRepository(gormDB)

	return &services.ServiceContainer{
		UserService:               services.NewUserService(userRepo),
		InteractionService:        services.NewInteractionService(interactionRepo, generatedRepo),
		GeneratedCandidateService: services.NewGeneratedCandidateService(generatedRepo),
		PipelineService:           services.NewPipelineService(pipelineRepo),
		OutreachService:           services.NewOutreachService(userRepo, candidateRepo, generatedRepo, llmClient, emailProvider),
		JDService:                 services.NewJDService(llmClient),
		CoachService:              services.NewCoachService(llmClient),
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer, gormDB *gorm.DB) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		UserHandler:               handlers.NewUserHandler(baseHandler, serviceContainer.UserService),
		InteractionHandler:        handlers.NewInteractionHandler(baseHandler, serviceContainer.InteractionService),
		GeneratedCandidateHandler: handlers.NewGeneratedCandidateHandler(baseHandler, serviceContainer.GeneratedCandidateService),
		PipelineHandler:           handlers.NewPipelineHandler(baseHandler, serviceContainer.PipelineService),
		OutreachHandler:           handlers.NewOutreachHandler(baseHandler, serviceContainer.OutreachService),
		JDHandler:                 handlers.NewJDHandler(baseHandler, serviceContainer.JDService),
		CoachHandler:              handlers.NewCoachHandler(baseHandler, serviceContainer.CoachService),
		TrainingHandler:           handlers.NewTrainingHandler(baseHandler),
		HealthHandler:             handlers.NewHealthHandler(gormDB),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var adminUser models.User
	result := tx.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		tx.Rollback()
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		Name:         "Platform Admin",
		PasswordHash: string(hashedPassword),
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
	}

	if err := tx.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return tx.Commit().Error
}
