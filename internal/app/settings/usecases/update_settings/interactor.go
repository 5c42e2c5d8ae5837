package update_settings

import (
	"context"

	"go.uber.org/zap"

	"github.com/murkotick/showcase-catalog-service/internal/app/settings/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/usecases/shared"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
	"github.com/murkotick/showcase-catalog-service/internal/platform/observability"
)

type Request struct {
	Patch domain.Patch
}

// Interactor validates a settings patch and persists the changed keys. A changed log level
// is applied to Level after the commit. log_max_bytes_mb is read at startup only.
type Interactor struct {
	SettingsRepo contracts.SettingsRepo
	OutboxRepo   contracts.OutboxRepo
	Committer    contracts.Committer
	ReadModel    contracts.ReadModel
	Defaults     domain.Settings
	Level        contracts.LevelSetter
	Clock        clock.Clock
}

func NewInteractor(
	repo contracts.SettingsRepo,
	outboxRepo contracts.OutboxRepo,
	committer contracts.Committer,
	readModel contracts.ReadModel,
	defaults domain.Settings,
	level contracts.LevelSetter,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		SettingsRepo: repo,
		OutboxRepo:   outboxRepo,
		Committer:    committer,
		ReadModel:    readModel,
		Defaults:     defaults,
		Level:        level,
		Clock:        clk,
	}
}

// Execute returns the settings after the update.
func (it *Interactor) Execute(ctx context.Context, req Request) (domain.Settings, error) {
	current, err := shared.Load(ctx, it.ReadModel, it.Defaults)
	if err != nil {
		return domain.Settings{}, err
	}
	next, changes, err := current.Apply(req.Patch)
	if err != nil {
		return domain.Settings{}, err
	}
	if len(changes) == 0 {
		return current, nil
	}

	now := it.Clock.Now()
	plan := commitplan.NewPlan()
	if err := shared.PlanChanges(plan, it.SettingsRepo, it.OutboxRepo, changes, now); err != nil {
		return domain.Settings{}, err
	}
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return domain.Settings{}, err
	}

	if _, ok := changes[domain.KeyLogLevel]; ok && it.Level != nil {
		if lvl, ok := observability.ParseLevel(next.LogLevel); ok {
			it.Level.SetLevel(lvl)
		}
	}
	observability.FromContext(ctx).Info("settings updated", zap.Int("keys", len(changes)))
	return next, nil
}
