package set_background_image

import (
	"context"

	"github.com/google/uuid"

	productdomain "github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	productshared "github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/shared"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/usecases/shared"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
)

// BackgroundTypes are the formats accepted for the storefront background, independent of
// the editable image allow-list.
var BackgroundTypes = []string{"image/jpeg", "image/png", "image/webp"}

type Request struct {
	File productshared.Upload
}

type Response struct {
	ID  string
	URL string
}

// Interactor stores a new background image, points the setting at it and removes the
// previous one.
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

func (it *Interactor) Execute(ctx context.Context, req Request) (Response, error) {
	current, err := shared.Load(ctx, it.ReadModel, it.Defaults)
	if err != nil {
		return Response{}, err
	}
	var previous *domain.Asset
	if oldID, ok := current.BackgroundImageID(); ok {
		if previous, err = shared.LoadAsset(ctx, it.ReadModel, oldID); err != nil {
			return Response{}, err
		}
	}

	policy := productdomain.UploadPolicy{
		MaxBytes:     int64(current.MaxFileSizeMB * 1024 * 1024),
		AllowedTypes: BackgroundTypes,
	}
	id := uuid.New().String()
	key := domain.BackgroundKey(id, productdomain.FileExt(req.File.Filename))
	stored, err := productshared.StoreUpload(ctx, it.Files, policy, key, req.File)
	if err != nil {
		return Response{}, err
	}

	now := it.Clock.Now()
	asset := domain.Asset{
		ID:        id,
		Kind:      domain.AssetKindBackground,
		Key:       stored.Key,
		Mime:      stored.Mime,
		Filename:  req.File.Filename,
		CreatedAt: now,
	}

	plan := commitplan.NewPlan()
	plan.Add(it.SettingsRepo.InsertAssetMut(asset))
	if previous != nil {
		plan.Add(it.SettingsRepo.DeleteAssetMut(previous.ID))
		plan.AfterCommit(func(ctx context.Context) { shared.DiscardFile(ctx, it.Files, previous.Key) })
	}
	err = shared.PlanChanges(plan, it.SettingsRepo, it.OutboxRepo,
		map[string]string{domain.KeyBackgroundImage: asset.URL()}, now)
	if err == nil {
		err = it.Committer.Apply(ctx, plan)
	}
	if err != nil {
		shared.DiscardFile(ctx, it.Files, stored.Key)
		return Response{}, err
	}
	return Response{ID: id, URL: asset.URL()}, nil
}
