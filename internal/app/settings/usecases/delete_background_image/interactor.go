package delete_background_image

import (
	"context"

	"github.com/murkotick/showcase-catalog-service/internal/app/settings/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/usecases/shared"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
)

// Interactor clears the background image setting and removes the stored asset.
type Interactor struct {
	SettingsRepo contracts.SettingsRepo
	OutboxRepo   contracts.OutboxRepo
	Committer    contracts.Committer
	ReadModel    contracts.ReadModel
	Files        contracts.FileStore
	Defaults     domain.Settings
	Clock        clock.Clock
}

func NewInteractor(
	repo contracts.SettingsRepo,
	outboxRepo contracts.OutboxRepo,
	committer contracts.Committer,
	readModel contracts.ReadModel,
	files contracts.FileStore,
	defaults domain.Settings,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		SettingsRepo: repo,
		OutboxRepo:   outboxRepo,
		Committer:    committer,
		ReadModel:    readModel,
		Files:        files,
		Defaults:     defaults,
		Clock:        clk,
	}
}

// Execute returns ErrBackgroundNotFound when the setting does not point at a stored file.
func (it *Interactor) Execute(ctx context.Context) error {
	current, err := shared.Load(ctx, it.ReadModel, it.Defaults)
	if err != nil {
		return err
	}
	id, ok := current.BackgroundImageID()
	if !ok {
		return domain.ErrBackgroundNotFound
	}
	asset, err := shared.LoadAsset(ctx, it.ReadModel, id)
	if err != nil {
		return err
	}

	now := it.Clock.Now()
	plan := commitplan.NewPlan()
	if asset != nil {
		plan.Add(it.SettingsRepo.DeleteAssetMut(asset.ID))
		plan.AfterCommit(func(ctx context.Context) { shared.DiscardFile(ctx, it.Files, asset.Key) })
	}
	if err := shared.PlanChanges(plan, it.SettingsRepo, it.OutboxRepo,
		map[string]string{domain.KeyBackgroundImage: ""}, now); err != nil {
		return err
	}
	return it.Committer.Apply(ctx, plan)
}
