package m_variant

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/models"
)

func BuildInsertMap(productID, variantID, optionName, optionValue string, stockQty, inOrderQty, sortOrder int64) map[string]interface{} {
	return map[string]interface{}{
		ColProductID:   productID,
		ColVariantID:   variantID,
		ColOptionName:  optionName,
		ColOptionValue: optionValue,
		ColStockQty:    stockQty,
		ColInOrderQty:  inOrderQty,
		ColSortOrder:   sortOrder,
	}
}

func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertMap(TableName, values)
}

func UpdateMutation(productID, variantID string, values map[string]interface{}) *spanner.Mutation {
	return spanner.UpdateMap(TableName, models.WithKey(values, map[string]interface{}{
		ColProductID: productID,
		ColVariantID: variantID,
	}))
}

func DeleteMutation(productID, variantID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID, variantID})
}
