package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nobijoy/hedge-fund-app/internal/config"
	"github.com/nobijoy/hedge-fund-app/internal/domain"
	"github.com/nobijoy/hedge-fund-app/internal/handler"
	"github.com/nobijoy/hedge-fund-app/internal/logging"
	"github.com/nobijoy/hedge-fund-app/internal/repository/memory"
	"github.com/nobijoy/hedge-fund-app/internal/repository/mongodb"
	"github.com/nobijoy/hedge-fund-app/internal/service"
)

func main() {
	logging.Setup()

	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		userRepo         domain.UserRepository
		contributionRepo domain.ContributionRepository
		adminRepo        domain.AdminRepository
	)

	switch cfg.StoreBackend {
	case "memory":
		slog.Warn("using in-memory store, data will not survive restarts")
		store := memory.New()
		userRepo = store.Users()
		contributionRepo = store.Contributions()
		adminRepo = store.Admins()
	default:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		db, err := mongodb.New(connectCtx, cfg.MongoURI, cfg.MongoDB)
		cancel()
		if err != nil {
			return err
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := db.Close(closeCtx); err != nil {
				slog.Error("store disconnect failed", "error", err)
			}
		}()

		indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err = db.EnsureIndexes(indexCtx)
		cancel()
		if err != nil {
			return err
		}

		userRepo = db.Users()
		contributionRepo = db.Contributions()
		adminRepo = db.Admins()
		slog.Info("connected to document store", "database", cfg.MongoDB)
	}

	authService := service.NewAuthService(adminRepo, cfg.JWTSecret, cfg.BcryptCost)
	userService := service.NewUserService(userRepo, contributionRepo)
	contributionService := service.NewContributionService(contributionRepo, userRepo)

	if err := authService.SeedAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return err
	}

	renderer, err := handler.NewRenderer()
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, renderer, authService, userService, contributionService, cfg.CookieSecure)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.RequestLogger(handler.SecurityHeaders(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
