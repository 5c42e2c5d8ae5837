package m_category

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/models"
)

func BuildInsertMap(categoryID, name, slug string, sortOrder int64, parentID *string, createdAt, updatedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColCategoryID: categoryID,
		ColName:       name,
		ColSlug:       slug,
		ColSortOrder:  sortOrder,
		ColParentID:   models.NullString(parentID),
		ColCreatedAt:  createdAt,
		ColUpdatedAt:  updatedAt,
	}
}

func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertMap(TableName, values)
}

func UpdateMutation(categoryID string, values map[string]interface{}) *spanner.Mutation {
	return spanner.UpdateMap(TableName, models.WithKey(values, map[string]interface{}{ColCategoryID: categoryID}))
}

func DeleteMutation(categoryID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{categoryID})
}
