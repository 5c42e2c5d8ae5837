package dto

// ProductDTO contains the scalar product fields returned by read queries.
// Timestamps and optional fields use *string (RFC3339 for times, two-decimal for prices)
// to mirror how they come out of Spanner. Use utils helpers to parse them.
type ProductDTO struct {
	ProductID        string
	Slug             string
	Title            string
	SKU              *string
	Manufacturer     *string
	CategoryID       *string
	ShortDescription *string
	Description      *string
	Hashtags         *string
	PriceAmount      *string
	PriceCurrency    *string
	IsPublished      bool
	SortOrder        int64
	ViewCount        int64
	CreatedAt        *string
	UpdatedAt        *string
}

// ImageDTO is one row of product_images.
type ImageDTO struct {
	ImageID   string
	ProductID string
	FilePath  string
	Mime      *string
	SizeBytes *int64
	Alt       *string
	SortOrder int64
	CreatedAt *string
}

// AttachmentDTO is one row of product_attachments.
type AttachmentDTO struct {
	AttachmentID string
	ProductID    string
	Title        string
	FilePath     string
	Mime         *string
	SizeBytes    *int64
	SortOrder    int64
	CreatedAt    *string
}

// SpecDTO is one row of product_specs.
type SpecDTO struct {
	SpecID    string
	ProductID string
	Name      string
	Value     string
	Unit      *string
	SortOrder int64
}

// VariantDTO is one row of product_variants.
type VariantDTO struct {
	VariantID   string
	ProductID   string
	OptionName  string
	OptionValue string
	StockQty    int64
	InOrderQty  int64
	SortOrder   int64
}

// ProductAggregateDTO is a product with its owned collections, each sorted by sort_order.
type ProductAggregateDTO struct {
	Product     ProductDTO
	Images      []ImageDTO
	Attachments []AttachmentDTO
	Specs       []SpecDTO
	Variants    []VariantDTO
}

// AdminListFilter is the admin list query. Nil filters are not applied.
type AdminListFilter struct {
	Search       *string
	CategoryID   *string
	Manufacturer *string
	IsPublished  *bool
	Page         int
	PerPage      int
	SortBy       string
	SortOrder    string
}

// AdminProductRow is one row of the admin list, joined with its category name, cover image
// and variants.
type AdminProductRow struct {
	Product      ProductDTO
	CategoryName *string
	CoverImageID *string
	Variants     []VariantDTO
}

// AdminProductPage is one page of the admin list.
type AdminProductPage struct {
	Items   []AdminProductRow
	Total   int64
	Page    int
	PerPage int
}

// PublicListFilter is the storefront list query.
type PublicListFilter struct {
	Page    int
	PerPage int
	Sort    string
}

// PublicProductRow is a storefront card.
type PublicProductRow struct {
	ProductID        string
	Slug             string
	Title            string
	ShortDescription *string
	PriceAmount      *string
	PriceCurrency    *string
	CoverImageID     *string
}

// PublicProductPage is one page of storefront cards.
type PublicProductPage struct {
	Items   []PublicProductRow
	Total   int64
	Page    int
	PerPage int
}

// StatsDTO holds the admin dashboard counters.
type StatsDTO struct {
	TotalProducts  int64
	PublishedCount int64
	TotalViews     int64
}

// File kinds returned by ResolveFile.
const (
	FileKindImage      = "image"
	FileKindAttachment = "attachment"
	FileKindAsset      = "asset"
)

// FileDTO is what /api/files/{id} needs to stream a stored object.
type FileDTO struct {
	FileID    string
	ProductID *string
	Kind      string
	FilePath  string
	Mime      *string
	Filename  string
}
