package bootstrap

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ai-tutor-be/internal/config"
	"ai-tutor-be/internal/controller"
	"ai-tutor-be/internal/pkg/logger"
	"ai-tutor-be/internal/pkg/ratelimit"
	"ai-tutor-be/internal/pkg/serverutils"
	"ai-tutor-be/internal/repository/unitofwork"
	"ai-tutor-be/internal/service"
	"ai-tutor-be/pkg/llm/factory"
	"ai-tutor-be/pkg/tutor"
)

type Container struct {
	// Controllers
	HealthController     controller.IHealthController
	AuthController       controller.IAuthController
	TutorController      controller.ITutorController
	SessionController    controller.ISessionController
	CollectionController controller.ICollectionController

	// Middleware shared with the server
	ErrorHandler fiber.Handler

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// LLM provider and Gateway
	llmProvider, err := factory.NewProvider(factory.ProviderConfig{
		Provider:      cfg.Ai.Provider,
		GeminiAPIKey:  cfg.Ai.GeminiAPIKey,
		GeminiModel:   cfg.Ai.GeminiModel,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
		OllamaModel:   cfg.Ai.OllamaModel,
		Timeout:       time.Duration(cfg.Ai.TimeoutSecs) * time.Second,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s", cfg.Ai.Provider)

	gateway := tutor.NewGateway(llmProvider)

	// Middleware
	jwtMiddleware := serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret)
	optionalJwt := serverutils.NewOptionalJwtMiddleware(cfg.Auth.JwtSecret)

	var limiter *ratelimit.Limiter
	if cfg.Ai.AnonRateLimit > 0 {
		limiter = ratelimit.New(cfg.Ai.AnonRateLimit, time.Minute)
		log.Printf("[INFO] Anonymous AI rate limit: %d requests/minute per IP", cfg.Ai.AnonRateLimit)
	}
	anonRateLimit := serverutils.NewAnonRateLimitMiddleware(limiter)

	// Services
	aiTimeout := time.Duration(cfg.Ai.TimeoutSecs) * time.Second
	authService := service.NewAuthService(uowFactory, cfg.Auth.JwtSecret, time.Duration(cfg.Auth.JwtExpiryHours)*time.Hour, sysLogger)
	tutorService := service.NewTutorService(uowFactory, gateway, aiTimeout, sysLogger)
	sessionService := service.NewSessionService(uowFactory, sysLogger)
	collectionService := service.NewCollectionService(uowFactory, sysLogger)

	return &Container{
		HealthController:     controller.NewHealthController(db, cfg.Ai.Provider),
		AuthController:       controller.NewAuthController(authService, jwtMiddleware),
		TutorController:      controller.NewTutorController(tutorService, optionalJwt, anonRateLimit),
		SessionController:    controller.NewSessionController(sessionService, jwtMiddleware),
		CollectionController: controller.NewCollectionController(collectionService, jwtMiddleware),

		ErrorHandler: serverutils.ErrorHandlerMiddleware(sysLogger),
		Logger:       sysLogger,
	}
}
