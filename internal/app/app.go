package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"healthreach_backend/database"
	"healthreach_backend/internal/auth"
	"healthreach_backend/internal/config"
	"healthreach_backend/internal/email"
	"healthreach_backend/internal/handlers"
	"healthreach_backend/internal/logger"
	"healthreach_backend/internal/middleware"
	"healthreach_backend/internal/models"
	"healthreach_backend/internal/repositories"
	"healthreach_backend/internal/routes"
	"healthreach_backend/internal/services"
	"healthreach_backend/internal/storage"
	"healthreach_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstCurator(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first curator", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires storage, repositories, services and handlers into
// a gin engine. Exposed for the test server.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	serviceContainer := InitializeServices(cfg, gormDB, storageInstance)
	appHandlers := InitializeHandlers(cfg, serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

// InitializeServices constructs the service container against the
// given database.
func InitializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" && cfg.Server.Env == "production" {
		smtp, err := email.NewSMTPProvider(email.Config{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize email provider", "error", err)
		}
		emailService = smtp
	} else {
		logger.Warn("SMTP not configured for this environment, using mock email provider")
		emailService = &MockEmailProvider{}
	}

	providerRepo := repositories.NewProviderRepository(gormDB)
	curatorRepo := repositories.NewCuratorRepository(gormDB)
	schoolRepo := repositories.NewSchoolRepository(gormDB)
	partnerRepo := repositories.NewPartnerRepository(gormDB)
	specialtyRepo := repositories.NewSpecialtyRepository(gormDB)

	return BuildServices(providerRepo, curatorRepo, schoolRepo, partnerRepo, specialtyRepo, emailService, storageInstance)
}

// BuildServices assembles services from explicit repositories. The
// test helpers call this with in-memory fakes.
func BuildServices(
	providerRepo repositories.ProviderRepository,
	curatorRepo repositories.CuratorRepository,
	schoolRepo repositories.SchoolRepository,
	partnerRepo repositories.PartnerRepository,
	specialtyRepo repositories.SpecialtyRepository,
	emailService email.Provider,
	storageInstance storage.Storage,
) *services.ServiceContainer {
	return &services.ServiceContainer{
		AuthService:      services.NewAuthService(providerRepo, curatorRepo, specialtyRepo, emailService, storageInstance),
		ProviderService:  services.NewProviderService(providerRepo),
		SchoolService:    services.NewSchoolService(schoolRepo, providerRepo, partnerRepo),
		PartnerService:   services.NewPartnerService(partnerRepo, schoolRepo),
		SpecialtyService: services.NewSpecialtyService(specialtyRepo),
		EmailService:     emailService,
	}
}

// InitializeHandlers constructs the handler set over the services.
func InitializeHandlers(cfg *config.Config, container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, container.AuthService, cfg.Upload.MaxSize),
		ProviderHandler:  handlers.NewProviderHandler(baseHandler, container.ProviderService),
		SchoolHandler:    handlers.NewSchoolHandler(baseHandler, container.SchoolService),
		PartnerHandler:   handlers.NewPartnerHandler(baseHandler, container.PartnerService),
		SpecialtyHandler: handlers.NewSpecialtyHandler(baseHandler, container.SpecialtyService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func seedFirstCurator(db *gorm.DB, cfg *config.Config) error {
	curatorEmail := cfg.FirstCuratorEmail
	curatorPassword := cfg.FirstCuratorPassword

	if curatorEmail == "" || curatorPassword == "" {
		logger.Warn("first_curator_email or first_curator_password not set. Skipping curator seeding.")
		return nil
	}

	var existing models.Curator
	result := db.Where("email = ?", curatorEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Curator already exists. Skipping creation.", "email", curatorEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for curator: %w", result.Error)
	}

	logger.Warn("No curator found with specified email. Creating first curator...", "email", curatorEmail)

	hashedPassword, err := auth.HashPassword(curatorPassword)
	if err != nil {
		return fmt.Errorf("failed to hash curator password: %w", err)
	}

	curator := &models.Curator{
		Email:        curatorEmail,
		PasswordHash: hashedPassword,
		FullName:     "Platform Curator",
	}
	if err := db.Create(curator).Error; err != nil {
		return fmt.Errorf("failed to create first curator: %w", err)
	}

	logger.Info("Successfully created first curator", "email", curatorEmail)
	return nil
}
