package apicontract

type Image struct {
	ID        string  `json:"id" validate:"required"`
	URL       string  `json:"url" validate:"required"`
	Alt       *string `json:"alt"`
	SortOrder int     `json:"sort_order"`
}

type Attachment struct {
	ID        string  `json:"id" validate:"required"`
	Title     string  `json:"title"`
	URL       string  `json:"url" validate:"required"`
	SortOrder int     `json:"sort_order"`
	Mime      *string `json:"mime,omitempty"`
	SizeBytes *int64  `json:"size_bytes,omitempty"`
}

type Spec struct {
	ID        string  `json:"id" validate:"required"`
	Name      string  `json:"name"`
	Value     string  `json:"value"`
	Unit      *string `json:"unit"`
	SortOrder int     `json:"sort_order"`
}

type Variant struct {
	ID          string `json:"id" validate:"required"`
	OptionName  string `json:"option_name"`
	OptionValue string `json:"option_value"`
	StockQty    int    `json:"stock_qty" validate:"gte=0"`
	InOrderQty  int    `json:"in_order_qty" validate:"gte=0"`
	SortOrder   int    `json:"sort_order"`
}

type VariantInput struct {
	OptionName  string `json:"option_name" validate:"required,max=128"`
	OptionValue string `json:"option_value" validate:"required,max=255"`
	StockQty    int    `json:"stock_qty" validate:"gte=0"`
	InOrderQty  int    `json:"in_order_qty" validate:"gte=0"`
	SortOrder   int    `json:"sort_order"`
}

type VariantPatch struct {
	OptionName  *string `json:"option_name,omitempty" validate:"omitempty,min=1,max=128"`
	OptionValue *string `json:"option_value,omitempty" validate:"omitempty,min=1,max=255"`
	StockQty    *int    `json:"stock_qty,omitempty" validate:"omitempty,gte=0"`
	InOrderQty  *int    `json:"in_order_qty,omitempty" validate:"omitempty,gte=0"`
	SortOrder   *int    `json:"sort_order,omitempty"`
}

type SpecInput struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Value     string  `json:"value" validate:"required,max=512"`
	Unit      *string `json:"unit" validate:"omitempty,max=64"`
	SortOrder int     `json:"sort_order"`
}

type SpecPatch struct {
	Name      *string          `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Value     *string          `json:"value,omitempty" validate:"omitempty,min=1,max=512"`
	Unit      Nullable[string] `json:"unit,omitzero"`
	SortOrder *int             `json:"sort_order,omitempty"`
}

// ImageSortUpdate moves one image. SortOrder is a pointer so that 0 is accepted.
type ImageSortUpdate struct {
	SortOrder *int `json:"sort_order" validate:"required"`
}

// ImageOrder is the batched reorder body: every image of the product, in display order.
type ImageOrder struct {
	ImageIDs []string `json:"image_ids" validate:"required,min=1,dive,required"`
}
