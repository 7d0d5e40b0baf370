package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gurtle/gurtle/internal/adapters/http/api"
	"github.com/gurtle/gurtle/internal/adapters/repository"
	service "github.com/gurtle/gurtle/internal/app"
	"github.com/gurtle/gurtle/internal/config"
	"github.com/gurtle/gurtle/internal/domain/integrity"
	"github.com/gurtle/gurtle/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout          = 10 * time.Second
	writeTimeout         = 10 * time.Second
	idleTimeout          = 60 * time.Second
	readHeaderTimeout    = 5 * time.Second
	shutdownTimeout      = 30 * time.Second
	statsRefreshInterval = 10 * time.Second
	storeDisconnectLimit = 5 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Apply configured log level (fallback to info on invalid input).
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// A store connection failure at boot is fatal: there is nothing this
	// service can serve without it.
	store, err := repository.NewMongoStore(ctx, cfg.MongoURI,
		repository.WithDatabase(cfg.Database),
		repository.WithCollection(cfg.Collection),
	)
	if err != nil {
		os.Stderr.WriteString("failed to connect to score store: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), storeDisconnectLimit)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Error(closeCtx, "store disconnect failed", logger.Error(err))
		}
	}()
	log.Info(ctx, "score store connected",
		logger.String("database", cfg.Database),
		logger.String("collection", cfg.Collection),
	)

	svc := service.New(
		service.WithStore(store),
		service.WithValidator(integrity.NewSHA256Validator(integrity.WithToken(cfg.SecretToken))),
		service.WithLogger(log.Named("service")),
		service.WithTopLimit(cfg.TopLimit),
	)

	// Keep the entries gauge warm in the background.
	go startStatsUpdater(ctx, svc)

	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// startStatsUpdater refreshes service gauges until the context ends.
func startStatsUpdater(ctx context.Context, svc *service.Service) {
	ticker := time.NewTicker(statsRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			svc.GetStats()
		}
	}
}
