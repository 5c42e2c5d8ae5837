package dto

// CategoryDTO is one row of product_categories.
type CategoryDTO struct {
	CategoryID string
	Name       string
	Slug       string
	SortOrder  int64
	ParentID   *string
	CreatedAt  *string
	UpdatedAt  *string
}
