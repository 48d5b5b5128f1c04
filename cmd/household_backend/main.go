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

	"github.com/SscSPs/household_ledger/internal/core/ports"
	"github.com/SscSPs/household_ledger/internal/core/services"
	"github.com/SscSPs/household_ledger/internal/handlers"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/SscSPs/household_ledger/internal/platform/events"
	"github.com/SscSPs/household_ledger/internal/platform/filestore"
	"github.com/SscSPs/household_ledger/internal/repositories/database"
	"github.com/SscSPs/household_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

//go:generate swag init -g main.go -d .,../../internal/handlers -o ../docs --parseInternal

const shutdownTimeout = 10 * time.Second

// @title Household Ledger API
// @version 1.0
// @description Shared expense tracking and monthly budgeting for a couple.

// @host localhost:3001
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Open(ctx, cfg, true)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("Database ready", slog.String("driver", cfg.DBDriver))

	publisher := newEventPublisher(cfg, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close event publisher", slog.String("error", err.Error()))
		}
	}()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	avatars, err := filestore.NewLocalStore(cfg.UploadDir)
	if err != nil {
		return err
	}

	verifier := services.NewGoogleIDTokenVerifier(cfg.GoogleClientID, nil)
	container := services.NewServiceContainer(cfg, store.Repos, verifier, services.WithEventPublisher(publisher))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	if err := handlers.RegisterRoutes(r, cfg, container, avatars, posthogClient); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// newEventPublisher falls back to a no-op publisher when no broker is configured or reachable.
func newEventPublisher(cfg *config.Config, logger *slog.Logger) ports.EventPublisher {
	if cfg.AMQPURL == "" {
		logger.Info("AMQP URL is empty, ledger events are not published")
		return events.NoopPublisher{}
	}
	publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		logger.Error("Failed to connect to AMQP broker, ledger events are not published", slog.String("error", err.Error()))
		return events.NoopPublisher{}
	}
	logger.Info("Publishing ledger events", slog.String("exchange", cfg.AMQPExchange))
	return publisher
}
