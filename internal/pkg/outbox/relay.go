package outbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
)

// Source is where the relay reads pending events from.
type Source interface {
	FetchPending(ctx context.Context, limit int) ([]Event, error)
	MarkPublished(ctx context.Context, eventIDs []string, at time.Time) error
}

// Publisher delivers a batch of events downstream.
type Publisher interface {
	Publish(ctx context.Context, events []Event) error
}

// Recorder receives relay counters. *observability.Metrics satisfies it.
type Recorder interface {
	OutboxPublished(n int)
	OutboxFailed()
}

// Relay polls the outbox and publishes pending events. Delivery is at-least-once: a crash
// between Publish and MarkPublished re-sends the batch on the next poll.
type Relay struct {
	Source       Source
	Publisher    Publisher
	Clock        clock.Clock
	Logger       *zap.Logger
	Recorder     Recorder
	BatchSize    int
	PollInterval time.Duration
}

// Drain publishes one batch and returns how many events were published.
func (r *Relay) Drain(ctx context.Context) (int, error) {
	batch := r.BatchSize
	if batch <= 0 {
		batch = 100
	}
	events, err := r.Source.FetchPending(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("outbox: fetch pending: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}
	if err := r.Publisher.Publish(ctx, events); err != nil {
		if r.Recorder != nil {
			r.Recorder.OutboxFailed()
		}
		return 0, fmt.Errorf("outbox: publish %d events: %w", len(events), err)
	}
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.EventID)
	}
	if err := r.Source.MarkPublished(ctx, ids, r.Clock.Now()); err != nil {
		return 0, fmt.Errorf("outbox: mark published: %w", err)
	}
	if r.Recorder != nil {
		r.Recorder.OutboxPublished(len(events))
	}
	return len(events), nil
}

// Run drains until ctx is done. A full batch is followed by another drain without waiting.
func (r *Relay) Run(ctx context.Context) error {
	interval := r.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		n, err := r.Drain(ctx)
		switch {
		case err != nil && errors.Is(err, context.Canceled):
			return nil
		case err != nil:
			logger.Warn("outbox relay drain failed", zap.Error(err))
		case n > 0:
			logger.Debug("outbox events published", zap.Int("count", n))
		}
		if err == nil && n > 0 && n >= r.BatchSize && r.BatchSize > 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
