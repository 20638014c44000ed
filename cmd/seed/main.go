package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/oksasatya/go-todo-api/config"
	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/container"
	mongoinfra "github.com/oksasatya/go-todo-api/internal/infrastructure/mongodb"
	"github.com/oksasatya/go-todo-api/pkg/helpers"
)

func main() {
	envFile := flag.String("env-file", ".env", "path to a dotenv file, ignored when missing")
	email := flag.String("email", "demo@example.com", "seed user email")
	password := flag.String("password", "password123", "seed user password")
	flag.Parse()

	_ = godotenv.Load(*envFile)
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)

	ctx := context.Background()
	client, err := mongoinfra.NewClient(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongoinfra.RunMigrations(client, cfg.MongoDatabase, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	c := container.New(cfg, logger, client, nil)
	users := application.NewUserService(c.Users, c.JWT, nil, logger, cfg.BcryptCost, 0)
	todos := application.NewTodoService(c.Todos, logger)

	u, token, err := users.Signup(ctx, *email, *password)
	switch {
	case errors.Is(err, application.ErrDuplicateEmail):
		u, token, err = users.Login(ctx, *email, *password)
		if err != nil {
			log.Fatalf("seed user exists but login failed: %v", err)
		}
		fmt.Printf("seed user already present: id=%s email=%s\n", u.ID, u.Email)
	case err != nil:
		log.Fatalf("failed to seed user: %v", err)
	default:
		fmt.Printf("seeded user: id=%s email=%s password=%s\n", u.ID, u.Email, *password)
	}
	fmt.Printf("x-auth: %s\n", token)

	first, err := todos.Create(ctx, "First test todo")
	if err != nil {
		log.Fatalf("failed to seed todo: %v", err)
	}
	second, err := todos.Create(ctx, "Second test todo")
	if err != nil {
		log.Fatalf("failed to seed todo: %v", err)
	}
	done := true
	if _, err := todos.Update(ctx, second.ID, application.UpdateTodoInput{Completed: &done}); err != nil {
		log.Fatalf("failed to complete todo: %v", err)
	}
	fmt.Printf("seeded todos: %s, %s (completed)\n", first.ID, second.ID)
}
