package container

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/progmatch/mentorship-backend/internal/config"
	"github.com/progmatch/mentorship-backend/internal/delivery/http"
	"github.com/progmatch/mentorship-backend/internal/delivery/http/handler"
	"github.com/progmatch/mentorship-backend/internal/delivery/http/middleware"
	"github.com/progmatch/mentorship-backend/internal/infrastructure/database"
	"github.com/progmatch/mentorship-backend/internal/infrastructure/server"
	"github.com/progmatch/mentorship-backend/internal/repository/postgres"
	"github.com/progmatch/mentorship-backend/internal/repository/redisnotify"
	"github.com/progmatch/mentorship-backend/internal/usecase/relation"
	"github.com/progmatch/mentorship-backend/internal/usecase/user"
	"github.com/progmatch/mentorship-backend/pkg/logger"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container.
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.New(cfg.Logging.Level, cfg.Logging.JSON)

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	relationRepo := postgres.NewRelationRepository(db)
	tasksRepo := postgres.NewTasksListRepository(db)
	txManager := postgres.NewTxManager(db, log)
	notifier := redisnotify.NewNotifier(redisClient)

	// Use cases
	relationUseCase := relation.NewRelationUseCase(
		relationRepo,
		userRepo,
		tasksRepo,
		notifier,
		txManager,
		log,
	)

	userUseCase := user.NewUserUseCase(userRepo)

	// Delivery
	relationHandler := handler.NewRelationHandler(relationUseCase)
	userHandler := handler.NewUserHandler(userUseCase)
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	router := http.NewRouter(relationHandler, userHandler, authMiddleware)
	srv := server.NewServer(&cfg.Server, router.Setup(), log)

	return &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections.
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error("failed to close redis", "error", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}
