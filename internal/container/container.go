package container

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/go-todo-api/config"
	repo "github.com/oksasatya/go-todo-api/internal/domain/repository"
	mongoinfra "github.com/oksasatya/go-todo-api/internal/infrastructure/mongodb"
	"github.com/oksasatya/go-todo-api/pkg/helpers"
)

// Container holds the components constructed in main and handed to the
// router. Nothing here is package-level state.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Mongo  *mongo.Client
	Redis  *redis.Client // nil when the session cache is disabled
	JWT    *helpers.JWTManager

	Todos repo.TodoRepository
	Users repo.UserRepository

	// Ping reports store health for /health.
	Ping func(ctx context.Context) error
}

// New wires the Mongo-backed repositories for the configured database.
func New(cfg *config.Config, logger *logrus.Logger, client *mongo.Client, rdb *redis.Client) *Container {
	db := client.Database(cfg.MongoDatabase)
	return &Container{
		Config: cfg,
		Logger: logger,
		Mongo:  client,
		Redis:  rdb,
		JWT:    helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL),
		Todos:  mongoinfra.NewTodoRepository(db),
		Users:  mongoinfra.NewUserRepository(db),
		Ping: func(ctx context.Context) error {
			return mongoinfra.Ping(ctx, client)
		},
	}
}
