package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/skillforge24/skillforge-backend/internal/config"
	"github.com/skillforge24/skillforge-backend/internal/delivery/http"
	"github.com/skillforge24/skillforge-backend/internal/delivery/http/handler"
	"github.com/skillforge24/skillforge-backend/internal/delivery/http/middleware"
	"github.com/skillforge24/skillforge-backend/internal/infrastructure/database"
	"github.com/skillforge24/skillforge-backend/internal/infrastructure/gemini"
	"github.com/skillforge24/skillforge-backend/internal/infrastructure/persistence"
	"github.com/skillforge24/skillforge-backend/internal/infrastructure/server"
	"github.com/skillforge24/skillforge-backend/internal/logger"
	"github.com/skillforge24/skillforge-backend/internal/repository/postgres"
	"github.com/skillforge24/skillforge-backend/internal/repository/redisrepo"
	"github.com/skillforge24/skillforge-backend/internal/store"
	"github.com/skillforge24/skillforge-backend/internal/usecase/auth"
	"github.com/skillforge24/skillforge-backend/internal/usecase/catalog"
	"github.com/skillforge24/skillforge-backend/internal/usecase/mentorship"
	"github.com/skillforge24/skillforge-backend/internal/usecase/profile"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	Log       *logger.Logger
	DB        *sqlx.DB
	Redis     *redis.Client
	GameStore *store.GameStore
	Server    *server.Server
	Gemini    *gemini.GeminiClient
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log, err := logger.New(cfg.Logging.Level, cfg.Server.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize Gemini client
	geminiClient, err := gemini.NewGeminiClient(cfg.GeminiAPIKey)
	if err != nil {
		log.Warn("failed to initialize gemini client, bio suggestions disabled", "error", err)
		geminiClient = nil
	}

	// Initialize the game store from its last snapshot (seed data on first run)
	snapshotter := persistence.NewRedisSnapshotter(redisClient, cfg.Store.Namespace)
	gameStore := store.New(context.Background(), store.SeedState(), snapshotter, log)

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	sessionRepo := redisrepo.NewSessionRepository(redisClient, cfg.Store.Namespace)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		sessionRepo,
		gameStore,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryMinutes)*time.Minute,
		log,
	)
	profileUseCase := profile.NewProfileUseCase(gameStore, geminiClient)
	mentorshipUseCase := mentorship.NewMentorshipUseCase(gameStore, log)
	catalogUseCase := catalog.NewCatalogUseCase()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	mentorshipHandler := handler.NewMentorshipHandler(mentorshipUseCase)
	catalogHandler := handler.NewCatalogHandler(catalogUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		mentorshipHandler,
		catalogHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config:    cfg,
		Log:       log,
		DB:        db,
		Redis:     redisClient,
		GameStore: gameStore,
		Server:    srv,
		Gemini:    geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Error("failed to close redis", "error", err)
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	c.Log.Sync()
	return nil
}
