package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/outbox"
	"github.com/murkotick/showcase-catalog-service/internal/platform/config"
	"github.com/murkotick/showcase-catalog-service/internal/platform/observability"
)

// metricsAddrEnv optionally exposes the relay counters at /metrics, for example ":9101".
const metricsAddrEnv = "RELAY_METRICS_ADDR"

// relay publishes pending outbox events to Kafka until it receives SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal("KAFKA_BROKERS is required")
	}

	logger, _, err := observability.NewLogger(observability.LoggerOptions{Level: cfg.Log.Level})
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		logger.Fatal("spanner client", zap.Error(err))
	}
	defer client.Close()

	publisher := outbox.NewKafkaPublisher(outbox.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic))
	defer publisher.Close()

	metrics := observability.NewMetrics()
	relay := &outbox.Relay{
		Source:       outbox.NewSpannerSource(client),
		Publisher:    publisher,
		Clock:        clock.RealClock{},
		Logger:       logger.Named("relay"),
		Recorder:     metrics,
		BatchSize:    cfg.Kafka.BatchSize,
		PollInterval: cfg.Kafka.PollInterval,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("outbox relay started",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic),
			zap.Duration("poll_interval", cfg.Kafka.PollInterval),
		)
		return relay.Run(gctx)
	})
	if addr := os.Getenv(metricsAddrEnv); addr != "" {
		srv := &http.Server{Addr: addr, Handler: metrics.Handler(), ReadHeaderTimeout: 5 * time.Second}
		g.Go(func() error {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Fatal("outbox relay stopped with error", zap.Error(err))
	}
	logger.Info("outbox relay stopped")
}
