package contracts

import (
	"context"
	"io"
	"time"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap/zapcore"

	"github.com/murkotick/showcase-catalog-service/internal/app/settings/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/dto"
	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/outbox"
)

// SettingsRepo returns Spanner mutations for settings rows and site assets.
type SettingsRepo interface {
	UpsertMut(key, value string, now time.Time) *spanner.Mutation
	InsertAssetMut(a domain.Asset) *spanner.Mutation
	DeleteAssetMut(assetID string) *spanner.Mutation
}

// ReadModel is the settings query side. GetAsset returns spanner.ErrRowNotFound.
type ReadModel interface {
	StoredSettings(ctx context.Context) (map[string]string, error)
	GetAsset(ctx context.Context, assetID string) (*dto.AssetDTO, error)
}

type FileStore interface {
	Save(ctx context.Context, key string, r io.Reader, contentType string) (int64, error)
	Delete(ctx context.Context, key string) error
}

// LevelSetter receives log level changes. zap.AtomicLevel satisfies it.
type LevelSetter interface {
	SetLevel(zapcore.Level)
}

type OutboxRepo interface {
	InsertMut(e *outbox.Event) *spanner.Mutation
}

type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
