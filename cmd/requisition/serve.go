package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"requisitionprint/config"
	"requisitionprint/internal/adapters/auth"
	"requisitionprint/internal/adapters/browser"
	"requisitionprint/internal/adapters/email"
	"requisitionprint/internal/adapters/pdfinspect"
	"requisitionprint/internal/adapters/preview"
	deliveryhttp "requisitionprint/internal/delivery/http"
	"requisitionprint/internal/delivery/http/controllers"
	"requisitionprint/internal/delivery/http/middleware"
	"requisitionprint/internal/domain"
	"requisitionprint/internal/repository/memory"
	"requisitionprint/internal/repository/postgres"
	"requisitionprint/internal/repository/sqlite"
	"requisitionprint/internal/services"
)

const shutdownTimeout = 15 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the HTTP API",
		Action: serve,
	}
}

func serve(ctx context.Context, _ *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := config.NewLogger()

	store, closeStore, err := openSettingsStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	logger.Info("settings store ready", "backend", cfg.SettingsStore)

	settingsSvc := services.NewSettingsService(store, logger)
	exportSvc := services.NewExportService(
		browser.NewPrinter(browser.Config{Bin: cfg.BrowserBin, NoSandbox: cfg.BrowserNoSandbox}, logger),
		pdfinspect.NewInspector(),
		settingsSvc,
		services.ExportConfig{
			PreviewURL:    cfg.PreviewURL(),
			Timeout:       cfg.ExportTimeout,
			Attempts:      cfg.ExportAttempts,
			MaxConcurrent: int64(cfg.ExportMaxConcurrency),
		},
		logger,
	)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	renderer, err := preview.NewRenderer()
	if err != nil {
		return err
	}

	protect := middleware.NoAuth
	if cfg.AuthSecret != "" {
		protect = middleware.RequireAuth(auth.NewJWTVerifier(cfg.AuthSecret), logger)
	} else {
		logger.Warn("AUTH_SECRET is not set, all callers share the anonymous settings")
	}

	router := deliveryhttp.NewRouter(
		controllers.NewRequisitionController(logger, settingsSvc, exportSvc, emailSvc, renderer),
		controllers.NewSettingsController(logger, settingsSvc),
		protect,
	)
	var handler http.Handler = router
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.CORS(cfg.CORSOrigins, handler)
	handler = middleware.RequestID(handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		// An export may run every attempt to its deadline before answering.
		WriteTimeout: time.Duration(cfg.ExportAttempts)*cfg.ExportTimeout + 30*time.Second,
	}
	return run(ctx, srv, logger)
}

func run(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openSettingsStore(ctx context.Context, cfg *config.Config) (domain.SettingsStore, func(), error) {
	switch cfg.SettingsStore {
	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		return postgres.NewSettingsRepository(db), func() { db.Close() }, nil
	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewSettingsRepository(db), func() { db.Close() }, nil
	default:
		return memory.NewSettingsRepository(), func() {}, nil
	}
}
