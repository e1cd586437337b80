package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dito-store/internal/cart"
	"dito-store/internal/config"
	"dito-store/internal/database"
	"dito-store/internal/handler"
	"dito-store/internal/repository"
	"dito-store/internal/router"
	"dito-store/internal/service"
	"dito-store/internal/sheetdb"
	"dito-store/internal/upload"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const cartPruneInterval = time.Hour

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().
		Str("backend", cfg.Storage.Backend).
		Msg("starting dito-store API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the persistence backend
	var repos repository.Repositories

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		repos = repository.NewPostgresRepositories(pool, logger)

	case config.BackendSheets:
		store, err := newSheetBackend(ctx, cfg.Sheets, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize sheet backend: %w", err)
		}
		// Drain in-flight sheet writes before exiting
		defer store.Wait()

		repos = repository.NewSheetRepositories(store)
		if cfg.Sheets.SpreadsheetID != "" {
			go store.RunPoller(ctx, cfg.Sheets.PollInterval)
		}

	default:
		return fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}

	// Initialize proof-of-payment upload pipeline
	processor := upload.NewProcessor(logger)
	proofStorage, err := newProofStorage(ctx, cfg.Uploads, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize upload storage: %w", err)
	}

	// Initialize session carts with a background pruner
	carts := cart.NewManager(cart.DefaultMaxIdle, logger)
	go func() {
		ticker := time.NewTicker(cartPruneInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				carts.Prune()
			}
		}
	}()

	// Initialize services
	catalogService := service.NewCatalogService(repos.Products, logger)
	cartService := service.NewCartService(carts, repos.Products, logger)
	orderService := service.NewOrderService(repos.Orders, repos.Products, repos.Affiliates, repos.Settings, carts, logger)
	affiliateService := service.NewAffiliateService(repos.Affiliates, repos.Orders, repos.Payouts, logger)
	payoutService := service.NewPayoutService(repos.Payouts, repos.Affiliates, logger)
	settingsService := service.NewSettingsService(repos.Settings, logger)
	customerService := service.NewCustomerService(repos.Customers, logger)

	// Initialize HTTP handlers and router
	handlers := router.Handlers{
		Products:   handler.NewProductHandler(catalogService, logger),
		Carts:      handler.NewCartHandler(cartService, logger),
		Orders:     handler.NewOrderHandler(orderService, logger),
		Affiliates: handler.NewAffiliateHandler(affiliateService, payoutService, logger),
		Admin:      handler.NewAdminHandler(payoutService, settingsService, customerService, logger),
		Uploads:    handler.NewUploadHandler(processor, proofStorage, logger),
		Customers:  handler.NewCustomerHandler(customerService, logger),
	}

	mux := router.New(handlers, cfg.Auth.AdminAPIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newSheetBackend connects to the configured spreadsheet and loads the
// initial snapshot. When the spreadsheet is unreachable or unconfigured the
// store starts from the built-in demo catalogue so the storefront still
// serves.
func newSheetBackend(ctx context.Context, cfg config.SheetsConfig, logger zerolog.Logger) (*repository.SheetStore, error) {
	if cfg.SpreadsheetID == "" {
		logger.Warn().Msg("no spreadsheet configured, running memory-only with the demo catalogue")
		return repository.NewMemorySheetStore(sheetdb.DemoSnapshot(), logger), nil
	}

	client, err := sheetdb.NewClient(ctx, cfg.SpreadsheetID, cfg.CredentialsFile, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet client: %w", err)
	}

	loadCtx, loadCancel := context.WithTimeout(ctx, cfg.LoadTimeout)
	defer loadCancel()

	snapshot, err := client.Read(loadCtx)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to load spreadsheet, starting from demo snapshot")
		snapshot = sheetdb.DemoSnapshot()
	}

	return repository.NewSheetStore(client, snapshot, logger), nil
}

// newProofStorage wires proof-of-payment archival: S3 with local fallback
// when enabled, local file system otherwise.
func newProofStorage(ctx context.Context, cfg config.UploadConfig, logger zerolog.Logger) (upload.Storage, error) {
	fileStorage, err := upload.NewFileStorage(cfg.Dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create file storage: %w", err)
	}

	if !cfg.S3Enabled {
		logger.Info().Msg("using local file system for proof uploads (S3 disabled)")
		return fileStorage, nil
	}

	s3Storage, err := upload.NewS3Storage(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3Prefix, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 storage, falling back to local file system only")
		return fileStorage, nil
	}

	return upload.NewFallbackStorage(s3Storage, fileStorage, true, logger), nil
}
