package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/uta-gremial/reclamos-service/internal/api/http"
	"github.com/uta-gremial/reclamos-service/internal/api/http/handlers"
	"github.com/uta-gremial/reclamos-service/internal/auth"
	"github.com/uta-gremial/reclamos-service/internal/config"
	"github.com/uta-gremial/reclamos-service/internal/events"
	"github.com/uta-gremial/reclamos-service/internal/observability"
	"github.com/uta-gremial/reclamos-service/internal/persistence"
	"github.com/uta-gremial/reclamos-service/internal/repository"
	"github.com/uta-gremial/reclamos-service/internal/service"
	"github.com/uta-gremial/reclamos-service/internal/storage"
	"github.com/uta-gremial/reclamos-service/internal/worker"
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

	ctx, cancel := context.WithCancel(context.Background())
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

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	uploads, err := storage.NewUploadStore(cfg.Uploads)
	if err != nil {
		logger.Fatal("failed to init upload store", zap.Error(err))
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	reclamoRepo := repository.NewReclamoRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	invitationRepo := repository.NewInvitationRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth, userRepo)
	reclamoService := service.NewReclamoService(service.ReclamoDependencies{
		ReclamoRepo: reclamoRepo,
		Files:       uploads,
		Dispatcher:  dispatcher,
	})
	statsService := service.NewStatsService(reclamoRepo)
	notificationService := service.NewNotificationService(notificationRepo, dispatcher, redis.Client, logger)
	userService := service.NewUserService(userRepo, cfg.Auth.BcryptCost)
	invitationService := service.NewInvitationService(invitationRepo, userRepo, cfg.Auth.BcryptCost)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	app.Static(uploads.URLPrefix(), uploads.Dir())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:             handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:               handlers.NewAuthHandler(authService),
		Reclamos:           handlers.NewReclamosHandler(reclamoService),
		Notifications:      handlers.NewNotificationsHandler(notificationService),
		Users:              handlers.NewUsersHandler(userService),
		Invitations:        handlers.NewInvitationsHandler(invitationService),
		Stats:              handlers.NewStatsHandler(statsService),
		AuthMiddleware:     authMiddleware,
		ReclamoRateLimiter: httptransport.ReclamoRateLimiter(redis.Client, cfg.RateLimit.ReclamosPerDay, logger),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
