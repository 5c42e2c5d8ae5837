package queries

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/murkotick/showcase-catalog-service/internal/app/settings/dto"
	"github.com/murkotick/showcase-catalog-service/internal/models"
	"github.com/murkotick/showcase-catalog-service/internal/models/m_asset"
	"github.com/murkotick/showcase-catalog-service/internal/models/m_setting"
)

// SpannerReadModel satisfies contracts.ReadModel for settings.
type SpannerReadModel struct {
	Client *spanner.Client
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{Client: client}
}

// StoredSettings returns every row of site_settings keyed by setting key.
func (rm *SpannerReadModel) StoredSettings(ctx context.Context) (map[string]string, error) {
	iter := rm.Client.Single().Read(ctx, m_setting.TableName, spanner.AllKeys(),
		[]string{m_setting.ColKey, m_setting.ColValue})
	defer iter.Stop()

	out := map[string]string{}
	err := iter.Do(func(row *spanner.Row) error {
		var key, value string
		if err := row.Columns(&key, &value); err != nil {
			return err
		}
		out[key] = value
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (rm *SpannerReadModel) GetAsset(ctx context.Context, assetID string) (*dto.AssetDTO, error) {
	row, err := rm.Client.Single().ReadRow(ctx, m_asset.TableName, spanner.Key{assetID},
		[]string{m_asset.ColAssetID, m_asset.ColKind, m_asset.ColFilePath, m_asset.ColMime, m_asset.ColFilename, m_asset.ColCreatedAt})
	if spanner.ErrCode(err) == codes.NotFound {
		return nil, spanner.ErrRowNotFound
	}
	if err != nil {
		return nil, err
	}

	var (
		a              dto.AssetDTO
		mime, filename spanner.NullString
		createdAt      time.Time
	)
	if err := row.Columns(&a.AssetID, &a.Kind, &a.FilePath, &mime, &filename, &createdAt); err != nil {
		return nil, err
	}
	a.Mime = models.StringPtr(mime)
	a.Filename = models.StringPtr(filename)
	created := createdAt.UTC().Format(time.RFC3339)
	a.CreatedAt = &created
	return &a, nil
}
