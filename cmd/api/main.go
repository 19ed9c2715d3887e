package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/nafirj-2103/nafi-rj-portfolio/internal/api/http"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/api/http/handlers"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/auth"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/config"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/events"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/mail"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/observability"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/persistence"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/ratelimit"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/repository"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/service"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/worker"
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

	// an unreachable primary store is not fatal; intake falls back to
	// the in-memory list
	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Warn("postgres unavailable; using in-memory storage", zap.Error(err))
		pg = &persistence.Postgres{}
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var (
		inquiryStore repository.InquiryStore
		adminStore   repository.AdminStore
	)
	if pool := pg.PoolHandle(); pool != nil {
		inquiryStore = repository.NewInquiryRepository(pool)
		adminStore = repository.NewAdminRepository(pool)
	} else {
		inquiryStore = repository.NewMemoryInquiryStore()
		adminStore = repository.NewMemoryAdminStore()
	}

	dispatcher := events.NewInMemoryDispatcher()
	mailer := mail.NewMailer(cfg.Mail, logger)
	notificationService := service.NewNotificationService(dispatcher, mailer, logger, cfg.Mail)
	worker.StartNotificationWorker(notificationService)

	inquiryService := service.NewInquiryService(inquiryStore, dispatcher, logger)
	authService := service.NewAuthService(cfg.Auth, adminStore)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())
	limiter := ratelimit.NewLimiter(redis.Client, cfg.RateLimit.Requests, cfg.RateLimit.Window(), logger)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(inquiryStore, logger),
		Inquiries:      handlers.NewInquiriesHandler(inquiryService),
		Admin:          handlers.NewAdminHandler(authService),
		AuthMiddleware: authMiddleware,
		Limiter:        limiter,
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
