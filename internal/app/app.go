package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"accounts_backend/database"
	"accounts_backend/internal/config"
	"accounts_backend/internal/email"
	"accounts_backend/internal/handlers"
	"accounts_backend/internal/logger"
	"accounts_backend/internal/middleware"
	"accounts_backend/internal/repositories"
	"accounts_backend/internal/routes"
	"accounts_backend/internal/services"
	"accounts_backend/internal/validator"
)

// Run wires the whole application together and starts the HTTP server.
func Run() error {
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	emailProvider := NewEmailProvider(cfg)
	defer emailProvider.Close()

	container := BuildServices(emailProvider)

	if err := SeedFirstSuperuser(db, cfg, container.UserService); err != nil {
		return fmt.Errorf("failed to seed first superuser: %w", err)
	}

	router := SetupRouter(cfg, db, container)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// NewEmailProvider builds the SMTP provider from the application config.
func NewEmailProvider(cfg *config.Config) email.Provider {
	smtpCfg := email.DefaultConfig()
	smtpCfg.Host = cfg.Email.SMTPHost
	smtpCfg.Port = cfg.Email.SMTPPort
	smtpCfg.Username = cfg.Email.SMTPUsername
	smtpCfg.Password = cfg.Email.SMTPPassword
	smtpCfg.FromEmail = cfg.Email.FromEmail
	smtpCfg.FromName = cfg.Email.FromName
	smtpCfg.UseTLS = cfg.Email.UseTLS
	smtpCfg.BaseURL = cfg.Email.BaseURL

	return email.NewSMTPProvider(smtpCfg, email.NewTemplateManager())
}

// BuildServices constructs the service layer over the given email provider.
func BuildServices(emailProvider email.Provider) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()

	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userService, userRepo, refreshTokenRepo, emailProvider)

	return &services.ServiceContainer{
		UserService:  userService,
		AuthService:  authService,
		EmailService: emailProvider,
	}
}

// SetupRouter builds the gin engine with middleware, handlers and routes.
func SetupRouter(cfg *config.Config, db *gorm.DB, container *services.ServiceContainer) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	base := handlers.NewBaseHandler(validator.New())

	appHandlers := &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(base, container.AuthService),
		UserHandler:      handlers.NewUserHandler(base, container.UserService),
		ProtectedHandler: handlers.NewProtectedHandler(base),
	}

	routes.RegisterRoutes(router, appHandlers)

	return router
}

// SeedFirstSuperuser creates the bootstrap superuser when credentials are
// configured and the user table is empty.
func SeedFirstSuperuser(db *gorm.DB, cfg *config.Config, userService services.UserService) error {
	if cfg.FirstSuperuserEmail == "" || cfg.FirstSuperuserPassword == "" {
		return nil
	}

	userRepo := repositories.NewUserRepository()
	count, err := userRepo.CountAll(db)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	user, err := userService.CreateSuperuser(db, cfg.FirstSuperuserEmail, cfg.FirstSuperuserPassword)
	if err != nil {
		return err
	}

	logger.Info("seeded first superuser", "email", user.Email)
	return nil
}
