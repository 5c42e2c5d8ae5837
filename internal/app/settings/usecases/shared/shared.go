package shared

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	"github.com/murkotick/showcase-catalog-service/internal/app/settings/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/domain"
	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/outbox"
	"github.com/murkotick/showcase-catalog-service/internal/platform/observability"
)

// Load returns defaults overlaid with the stored rows.
func Load(ctx context.Context, rm contracts.ReadModel, defaults domain.Settings) (domain.Settings, error) {
	stored, err := rm.StoredSettings(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	return defaults.Overlay(stored), nil
}

// PlanChanges upserts every changed key, in key order, and stages one settings.updated
// event for them.
func PlanChanges(plan *commitplan.Plan, repo contracts.SettingsRepo, w outbox.Writer, changes map[string]string, now time.Time) error {
	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		plan.Add(repo.UpsertMut(k, changes[k], now))
	}
	events := []*domain.SettingsUpdatedEvent{{Changes: changes, UpdatedAt: now}}
	return outbox.Stage(plan, w, events, marshalEvent, now)
}

func marshalEvent(ev *domain.SettingsUpdatedEvent) (string, error) {
	b, err := json.Marshal(ev)
	return string(b), err
}

// LoadAsset returns the asset, or nil when the row is gone.
func LoadAsset(ctx context.Context, rm contracts.ReadModel, assetID string) (*domain.Asset, error) {
	a, err := rm.GetAsset(ctx, assetID)
	if errors.Is(err, spanner.ErrRowNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	asset := &domain.Asset{ID: a.AssetID, Kind: a.Kind, Key: a.FilePath}
	if a.Mime != nil {
		asset.Mime = *a.Mime
	}
	if a.Filename != nil {
		asset.Filename = *a.Filename
	}
	return asset, nil
}

// DiscardFile deletes a stored file best-effort.
func DiscardFile(ctx context.Context, files contracts.FileStore, key string) {
	if key == "" {
		return
	}
	if err := files.Delete(ctx, key); err != nil {
		observability.FromContext(ctx).Warn("failed to delete stored file", zap.String("key", key), zap.Error(err))
	}
}
