package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID        = "product_id"
	ColSlug             = "slug"
	ColTitle            = "title"
	ColSKU              = "sku"
	ColManufacturer     = "manufacturer"
	ColCategoryID       = "category_id"
	ColShortDescription = "short_description"
	ColDescription      = "description"
	ColHashtags         = "hashtags"
	ColPriceAmount      = "price_amount"
	ColPriceCurrency    = "price_currency"
	ColIsPublished      = "is_published"
	ColSortOrder        = "sort_order"
	ColViewCount        = "view_count"
	ColCreatedAt        = "created_at"
	ColUpdatedAt        = "updated_at"
)

// SlugIndex is the unique index that rejects duplicate slugs.
const SlugIndex = "products_by_slug"
