package m_asset

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/models"
)

func BuildInsertMap(assetID, kind, filePath string, mime, filename *string, createdAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColAssetID:   assetID,
		ColKind:      kind,
		ColFilePath:  filePath,
		ColMime:      models.NullString(mime),
		ColFilename:  models.NullString(filename),
		ColCreatedAt: createdAt,
	}
}

func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertMap(TableName, values)
}

func DeleteMutation(assetID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{assetID})
}
