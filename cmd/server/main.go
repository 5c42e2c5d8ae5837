package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/murkotick/showcase-catalog-service/internal/platform/config"
	"github.com/murkotick/showcase-catalog-service/internal/platform/observability"
	"github.com/murkotick/showcase-catalog-service/internal/platform/storage"
	httptransport "github.com/murkotick/showcase-catalog-service/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, level, err := observability.NewLogger(observability.LoggerOptions{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxBytesMB: cfg.Log.MaxBytesMB,
	})
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, level); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger, level zap.AtomicLevel) error {
	client, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		return err
	}
	defer client.Close()

	files, err := storage.New(ctx, storage.Options{
		Driver: cfg.Storage.Driver,
		Path:   cfg.Storage.Path,
		Bucket: cfg.Storage.Bucket,
	})
	if err != nil {
		return err
	}
	if closer, ok := files.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	metrics := observability.NewMetrics()
	api := newAPI(cfg, client, files, level, metrics)

	health := httptransport.NewHealthHandlers(map[string]httptransport.ReadinessCheck{
		"spanner": spannerCheck(client),
	})
	router := httptransport.NewRouter(api,
		httptransport.WithMiddlewares(
			observability.RecoveryMiddleware(logger),
			observability.RequestLoggerMiddleware(logger, metrics),
			httptransport.CORS(cfg.CORS.Origins),
		),
		httptransport.WithHealthHandlers(health),
		httptransport.WithMetrics(metrics.Handler()),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening",
			zap.String("addr", srv.Addr),
			zap.String("storage_driver", cfg.Storage.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown failed, closing", zap.Error(err))
			return srv.Close()
		}
		return nil
	})
	return g.Wait()
}
