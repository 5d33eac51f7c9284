package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/melisaydin/shop-backend/internal/api"
	"github.com/melisaydin/shop-backend/internal/auth"
	"github.com/melisaydin/shop-backend/internal/config"
	"github.com/melisaydin/shop-backend/internal/db"
	"github.com/melisaydin/shop-backend/internal/logger"
	"github.com/melisaydin/shop-backend/internal/mailer"
	"github.com/melisaydin/shop-backend/internal/metrics"
	"github.com/melisaydin/shop-backend/internal/middleware"
	"github.com/melisaydin/shop-backend/internal/repository/postgres"
	"github.com/melisaydin/shop-backend/internal/services"
	"github.com/melisaydin/shop-backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	tm := auth.NewTokenManager(cfg.JWTSecret)
	notifier := mailer.New(cfg, log)

	userSvc := services.NewUserService(repos.Users, repos.AuditLogs, tm, notifier, wp, log)
	cartSvc := services.NewCartService(repos.Carts, repos.Products)
	orderSvc := services.NewOrderService(repos.Orders, repos.Products, repos.AuditLogs, wp)
	catalogSvc := services.NewCatalogService(repos.Products)
	contactSvc := services.NewContactService(repos.Contacts, repos.Subscribers, notifier, wp, cfg.AdminEmail, log)

	metrics.Init()
	r := api.NewRouter(api.Deps{
		Cfg:        cfg,
		AuthMW:     middleware.NewAuthMiddleware(tm),
		UserSvc:    userSvc,
		CartSvc:    cartSvc,
		OrderSvc:   orderSvc,
		CatalogSvc: catalogSvc,
		ContactSvc: contactSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
