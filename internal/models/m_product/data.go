package m_product

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/models"
)

// Row is the full column set of a product row.
type Row struct {
	ProductID        string
	Slug             string
	Title            string
	SKU              *string
	Manufacturer     *string
	CategoryID       *string
	ShortDescription *string
	Description      *string
	Hashtags         *string
	PriceAmount      *big.Rat
	PriceCurrency    *string
	IsPublished      bool
	SortOrder        int64
	ViewCount        int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// InsertMutation builds a spanner.Insert mutation for a product from a map of values.
// Expected keys are the column names declared in fields.go.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertMap(TableName, values)
}

// UpdateMutation builds a spanner.Update mutation for a product.
// The values map should NOT include product_id; the key is passed separately.
func UpdateMutation(productID string, values map[string]interface{}) *spanner.Mutation {
	return spanner.UpdateMap(TableName, models.WithKey(values, map[string]interface{}{ColProductID: productID}))
}

// DeleteMutation removes the product row. Interleaved media, specs and variants go with it.
func DeleteMutation(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}

// BuildInsertMap prepares the canonical fields for insertion.
func BuildInsertMap(r Row) map[string]interface{} {
	return map[string]interface{}{
		ColProductID:        r.ProductID,
		ColSlug:             r.Slug,
		ColTitle:            r.Title,
		ColSKU:              models.NullString(r.SKU),
		ColManufacturer:     models.NullString(r.Manufacturer),
		ColCategoryID:       models.NullString(r.CategoryID),
		ColShortDescription: models.NullString(r.ShortDescription),
		ColDescription:      models.NullString(r.Description),
		ColHashtags:         models.NullString(r.Hashtags),
		ColPriceAmount:      models.NullNumeric(r.PriceAmount),
		ColPriceCurrency:    models.NullString(r.PriceCurrency),
		ColIsPublished:      r.IsPublished,
		ColSortOrder:        r.SortOrder,
		ColViewCount:        r.ViewCount,
		ColCreatedAt:        r.CreatedAt,
		ColUpdatedAt:        r.UpdatedAt,
	}
}
