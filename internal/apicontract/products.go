package apicontract

import "github.com/shopspring/decimal"

// VariantSummary is the variant sub-row shown in the admin product list.
type VariantSummary struct {
	ID          string `json:"id" validate:"required"`
	OptionName  string `json:"option_name"`
	OptionValue string `json:"option_value"`
	StockQty    int    `json:"stock_qty" validate:"gte=0"`
	InOrderQty  int    `json:"in_order_qty" validate:"gte=0"`
}

// ProductSummary is one row of the admin product list.
type ProductSummary struct {
	ID            string           `json:"id" validate:"required"`
	Slug          string           `json:"slug" validate:"required"`
	Title         string           `json:"title"`
	SKU           *string          `json:"sku"`
	Manufacturer  *string          `json:"manufacturer"`
	CategoryID    *string          `json:"category_id"`
	CategoryName  *string          `json:"category_name"`
	PriceAmount   *decimal.Decimal `json:"price_amount"`
	PriceCurrency *string          `json:"price_currency"`
	IsPublished   bool             `json:"is_published"`
	SortOrder     int              `json:"sort_order"`
	ViewCount     int64            `json:"view_count" validate:"gte=0"`
	ImageURL      *string          `json:"image_url"`
	Variants      []VariantSummary `json:"variants" validate:"dive"`
}

// ProductListResponse is a page of admin product rows.
type ProductListResponse struct {
	Items   []ProductSummary `json:"items" validate:"dive"`
	Total   int              `json:"total" validate:"gte=0"`
	Page    int              `json:"page" validate:"gte=1"`
	PerPage int              `json:"per_page" validate:"gte=1"`
}

// ProductAggregate is a product with its owned collections, as loaded by the editor.
type ProductAggregate struct {
	ID               string           `json:"id" validate:"required"`
	Slug             string           `json:"slug" validate:"required"`
	Title            string           `json:"title"`
	SKU              *string          `json:"sku"`
	Manufacturer     *string          `json:"manufacturer"`
	CategoryID       *string          `json:"category_id"`
	ViewCount        int64            `json:"view_count" validate:"gte=0"`
	ShortDescription *string          `json:"short_description"`
	Description      *string          `json:"description"`
	Hashtags         *string          `json:"hashtags"`
	PriceAmount      *decimal.Decimal `json:"price_amount"`
	PriceCurrency    *string          `json:"price_currency"`
	IsPublished      bool             `json:"is_published"`
	SortOrder        int              `json:"sort_order"`
	Images           []Image          `json:"images" validate:"dive"`
	Attachments      []Attachment     `json:"attachments" validate:"dive"`
	Specs            []Spec           `json:"specs" validate:"dive"`
	Variants         []Variant        `json:"variants" validate:"dive"`
}

// ProductInput is the full scalar field set sent on create.
type ProductInput struct {
	Slug             string           `json:"slug" validate:"required,max=255"`
	Title            string           `json:"title" validate:"required,max=512"`
	SKU              *string          `json:"sku" validate:"omitempty,max=64"`
	Manufacturer     *string          `json:"manufacturer" validate:"omitempty,max=255"`
	CategoryID       *string          `json:"category_id" validate:"omitempty,uuid"`
	ShortDescription *string          `json:"short_description"`
	Description      *string          `json:"description"`
	Hashtags         *string          `json:"hashtags" validate:"omitempty,max=1024"`
	PriceAmount      *decimal.Decimal `json:"price_amount"`
	PriceCurrency    *string          `json:"price_currency" validate:"omitempty,len=3"`
	IsPublished      bool             `json:"is_published"`
	SortOrder        int              `json:"sort_order"`
}

// ProductPatch is a partial update. Nullable fields distinguish "leave as is" from "clear".
type ProductPatch struct {
	Slug             *string                   `json:"slug,omitempty" validate:"omitempty,min=1,max=255"`
	Title            *string                   `json:"title,omitempty" validate:"omitempty,min=1,max=512"`
	SKU              Nullable[string]          `json:"sku,omitzero"`
	Manufacturer     Nullable[string]          `json:"manufacturer,omitzero"`
	CategoryID       Nullable[string]          `json:"category_id,omitzero"`
	ShortDescription Nullable[string]          `json:"short_description,omitzero"`
	Description      Nullable[string]          `json:"description,omitzero"`
	Hashtags         Nullable[string]          `json:"hashtags,omitzero"`
	PriceAmount      Nullable[decimal.Decimal] `json:"price_amount,omitzero"`
	PriceCurrency    *string                   `json:"price_currency,omitempty" validate:"omitempty,len=3"`
	IsPublished      *bool                     `json:"is_published,omitempty"`
	SortOrder        *int                      `json:"sort_order,omitempty"`
}

// PatchFromInput turns a full field set into a patch that sets every field.
func PatchFromInput(in ProductInput) ProductPatch {
	slug, title := in.Slug, in.Title
	published, sortOrder := in.IsPublished, in.SortOrder
	return ProductPatch{
		Slug:             &slug,
		Title:            &title,
		SKU:              FromPtr(in.SKU),
		Manufacturer:     FromPtr(in.Manufacturer),
		CategoryID:       FromPtr(in.CategoryID),
		ShortDescription: FromPtr(in.ShortDescription),
		Description:      FromPtr(in.Description),
		Hashtags:         FromPtr(in.Hashtags),
		PriceAmount:      FromPtr(in.PriceAmount),
		PriceCurrency:    in.PriceCurrency,
		IsPublished:      &published,
		SortOrder:        &sortOrder,
	}
}

// CreatedProduct is returned by product create.
type CreatedProduct struct {
	ID   string `json:"id" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}

// Stats is the admin dashboard counter set.
type Stats struct {
	TotalProducts  int64 `json:"total_products" validate:"gte=0"`
	PublishedCount int64 `json:"published_count" validate:"gte=0"`
	TotalViews     int64 `json:"total_views" validate:"gte=0"`
}
