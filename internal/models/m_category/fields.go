package m_category

// Field constants for the product_categories table.
const (
	TableName = "product_categories"

	ColCategoryID = "category_id"
	ColName       = "name"
	ColSlug       = "slug"
	ColSortOrder  = "sort_order"
	ColParentID   = "parent_id"
	ColCreatedAt  = "created_at"
	ColUpdatedAt  = "updated_at"
)

// SlugIndex is the unique index that rejects duplicate category slugs.
const SlugIndex = "product_categories_by_slug"
