package m_spec

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/models"
)

func BuildInsertMap(productID, specID, name, value string, unit *string, sortOrder int64) map[string]interface{} {
	return map[string]interface{}{
		ColProductID: productID,
		ColSpecID:    specID,
		ColName:      name,
		ColValue:     value,
		ColUnit:      models.NullString(unit),
		ColSortOrder: sortOrder,
	}
}

func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertMap(TableName, values)
}

func UpdateMutation(productID, specID string, values map[string]interface{}) *spanner.Mutation {
	return spanner.UpdateMap(TableName, models.WithKey(values, map[string]interface{}{
		ColProductID: productID,
		ColSpecID:    specID,
	}))
}

func DeleteMutation(productID, specID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID, specID})
}
