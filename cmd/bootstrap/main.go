// Command bootstrap seeds the initial administrator account. It is safe to
// run repeatedly; an existing admin username short-circuits.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/uta-gremial/reclamos-service/internal/auth"
	"github.com/uta-gremial/reclamos-service/internal/config"
	"github.com/uta-gremial/reclamos-service/internal/domain"
	"github.com/uta-gremial/reclamos-service/internal/observability"
	"github.com/uta-gremial/reclamos-service/internal/persistence"
	"github.com/uta-gremial/reclamos-service/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	username := getEnvDefault("BOOTSTRAP_ADMIN_USERNAME", "admin")
	email := getEnvDefault("BOOTSTRAP_ADMIN_EMAIL", "admin@uta.com")
	password := os.Getenv("BOOTSTRAP_ADMIN_PASSWORD")
	if password == "" {
		logger.Fatal("BOOTSTRAP_ADMIN_PASSWORD is required")
	}

	users := repository.NewUserRepository(pg.PoolHandle())
	if _, err := users.GetByUsername(ctx, username); err == nil {
		logger.Info("admin user already exists", zap.String("username", username))
		return
	} else if !errors.Is(err, pgx.ErrNoRows) {
		logger.Fatal("failed to check existing admin", zap.Error(err))
	}

	hash, err := auth.HashPassword(password, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	admin := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := users.Create(ctx, admin); err != nil {
		logger.Fatal("failed to create admin", zap.Error(err))
	}
	logger.Info("admin user created", zap.String("username", username))
}

func getEnvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
