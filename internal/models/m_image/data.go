package m_image

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/models"
)

func BuildInsertMap(productID, imageID, filePath string, mime *string, sizeBytes *int64, alt *string, sortOrder int64, createdAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColProductID: productID,
		ColImageID:   imageID,
		ColFilePath:  filePath,
		ColMime:      models.NullString(mime),
		ColSizeBytes: models.NullInt64(sizeBytes),
		ColAlt:       models.NullString(alt),
		ColSortOrder: sortOrder,
		ColCreatedAt: createdAt,
	}
}

func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertMap(TableName, values)
}

func UpdateMutation(productID, imageID string, values map[string]interface{}) *spanner.Mutation {
	return spanner.UpdateMap(TableName, models.WithKey(values, map[string]interface{}{
		ColProductID: productID,
		ColImageID:   imageID,
	}))
}

func DeleteMutation(productID, imageID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID, imageID})
}
