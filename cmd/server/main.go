package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/usell/billing/internal/api"
	v1 "github.com/usell/billing/internal/api/v1"
	"github.com/usell/billing/internal/config"
	"github.com/usell/billing/internal/logger"
	"github.com/usell/billing/internal/postgres"
	"github.com/usell/billing/internal/repository"
	"github.com/usell/billing/internal/service"
	"github.com/usell/billing/internal/types"
	"go.uber.org/fx"
)

// @title uSell Billing Export API
// @version 1.0
// @description Invoice workbook export service
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	// Local overrides, ignored when no .env is present
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Postgres
			postgres.NewDB,

			// Repositories
			repository.NewBillingRepository,

			// Services
			service.NewServiceParams,
			service.NewInvoiceExportService,

			// API
			provideHandlers,
			api.NewRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	exportService service.InvoiceExportService,
) api.Handlers {
	return api.Handlers{
		Health: v1.NewHealthHandler(logger),
		Export: v1.NewExportHandler(exportService, logger),
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("Starting API server at %s", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
