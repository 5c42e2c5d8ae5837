package repo

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/app/settings/domain"
	"github.com/murkotick/showcase-catalog-service/internal/models/m_asset"
	"github.com/murkotick/showcase-catalog-service/internal/models/m_setting"
)

type SettingsRepo struct{}

func NewSettingsRepo() *SettingsRepo {
	return &SettingsRepo{}
}

func (r *SettingsRepo) UpsertMut(key, value string, now time.Time) *spanner.Mutation {
	return m_setting.UpsertMutation(key, value, now.UTC())
}

func (r *SettingsRepo) InsertAssetMut(a domain.Asset) *spanner.Mutation {
	return m_asset.InsertMutation(buildAssetValues(a))
}

func buildAssetValues(a domain.Asset) map[string]interface{} {
	return m_asset.BuildInsertMap(a.ID, a.Kind, a.Key, optional(a.Mime), optional(a.Filename), a.CreatedAt.UTC())
}

func (r *SettingsRepo) DeleteAssetMut(assetID string) *spanner.Mutation {
	if assetID == "" {
		return nil
	}
	return m_asset.DeleteMutation(assetID)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
