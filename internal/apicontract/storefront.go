package apicontract

import "github.com/shopspring/decimal"

type StorefrontItem struct {
	ID               string           `json:"id" validate:"required"`
	Slug             string           `json:"slug" validate:"required"`
	Title            string           `json:"title"`
	ShortDescription *string          `json:"short_description"`
	PriceAmount      *decimal.Decimal `json:"price_amount"`
	PriceCurrency    *string          `json:"price_currency"`
	ImageURL         *string          `json:"image_url"`
}

type StorefrontList struct {
	Items   []StorefrontItem `json:"items" validate:"dive"`
	Total   int              `json:"total" validate:"gte=0"`
	Page    int              `json:"page" validate:"gte=1"`
	PerPage int              `json:"per_page" validate:"gte=1,lte=100"`
}

type StorefrontDetail struct {
	ID               string           `json:"id" validate:"required"`
	Slug             string           `json:"slug" validate:"required"`
	Title            string           `json:"title"`
	Description      *string          `json:"description"`
	ShortDescription *string          `json:"short_description"`
	PriceAmount      *decimal.Decimal `json:"price_amount"`
	PriceCurrency    *string          `json:"price_currency"`
	Hashtags         []string         `json:"hashtags"`
	Images           []Image          `json:"images" validate:"dive"`
	Attachments      []Attachment     `json:"attachments" validate:"dive"`
	Specs            []Spec           `json:"specs" validate:"dive"`
}

type ViewCount struct {
	ViewCount int64 `json:"view_count" validate:"gte=0"`
}
