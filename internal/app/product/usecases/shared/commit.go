package shared

import (
	"context"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"

	contracts "github.com/murkotick/showcase-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	"github.com/murkotick/showcase-catalog-service/internal/platform/observability"
)

// MapCommitError turns a unique index violation on products_by_slug into ErrSlugTaken.
// products has no other unique secondary index, and primary keys are fresh uuids.
func MapCommitError(err error) error {
	if err == nil {
		return nil
	}
	if spanner.ErrCode(err) == codes.AlreadyExists {
		return domain.ErrSlugTaken
	}
	return err
}

// DiscardFiles removes stored objects whose rows are gone or were never written.
// Failures are logged only; the database is already consistent.
func DiscardFiles(ctx context.Context, store contracts.FileStore, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := store.Delete(ctx, key); err != nil {
			observability.FromContext(ctx).Warn("stored file not removed",
				zap.String("key", key), zap.Error(err))
		}
	}
}
