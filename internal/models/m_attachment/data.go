package m_attachment

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/models"
)

func BuildInsertMap(productID, attachmentID, title, filePath string, mime *string, sizeBytes *int64, sortOrder int64, createdAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColProductID:    productID,
		ColAttachmentID: attachmentID,
		ColTitle:        title,
		ColFilePath:     filePath,
		ColMime:         models.NullString(mime),
		ColSizeBytes:    models.NullInt64(sizeBytes),
		ColSortOrder:    sortOrder,
		ColCreatedAt:    createdAt,
	}
}

func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertMap(TableName, values)
}

func DeleteMutation(productID, attachmentID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID, attachmentID})
}
