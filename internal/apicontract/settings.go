package apicontract

// Settings is the admin view of the shop settings. The last three fields are read-only.
type Settings struct {
	ContactTelegramLink           string  `json:"contact_telegram_link"`
	StorageMaxFileSizeMB          float64 `json:"storage_max_file_size_mb" validate:"gt=0"`
	StorageAllowedImageTypes      string  `json:"storage_allowed_image_types"`
	StorageAllowedAttachmentTypes string  `json:"storage_allowed_attachment_types"`
	LogLevel                      string  `json:"log_level"`
	LogMaxBytesMB                 float64 `json:"log_max_bytes_mb" validate:"gte=0"`

	MiniappShopName        string `json:"miniapp_shop_name"`
	MiniappSectionTitle    string `json:"miniapp_section_title"`
	MiniappFooterText      string `json:"miniapp_footer_text"`
	MiniappBackgroundColor string `json:"miniapp_background_color"`
	MiniappBackgroundImage string `json:"miniapp_background_image"`
	MiniappTextColor       string `json:"miniapp_text_color"`
	MiniappHeadingColor    string `json:"miniapp_heading_color"`
	MiniappPriceColor      string `json:"miniapp_price_color"`
	MiniappHintColor       string `json:"miniapp_hint_color"`
	MiniappCardBgColor     string `json:"miniapp_card_bg_color"`

	APIPort     int    `json:"api_port"`
	CORSOrigins string `json:"cors_origins"`
	StoragePath string `json:"storage_path"`
}

// SettingsPatch updates the editable settings. The background image is managed through
// its own upload endpoint and is not part of the patch.
type SettingsPatch struct {
	ContactTelegramLink           *string  `json:"contact_telegram_link,omitempty" validate:"omitempty,max=255"`
	StorageMaxFileSizeMB          *float64 `json:"storage_max_file_size_mb,omitempty" validate:"omitempty,gt=0,lte=1024"`
	StorageAllowedImageTypes      *string  `json:"storage_allowed_image_types,omitempty"`
	StorageAllowedAttachmentTypes *string  `json:"storage_allowed_attachment_types,omitempty"`
	LogLevel                      *string  `json:"log_level,omitempty" validate:"omitempty,oneof=DEBUG INFO WARNING ERROR debug info warning error"`
	LogMaxBytesMB                 *float64 `json:"log_max_bytes_mb,omitempty" validate:"omitempty,gte=0"`

	MiniappShopName        *string `json:"miniapp_shop_name,omitempty" validate:"omitempty,max=255"`
	MiniappSectionTitle    *string `json:"miniapp_section_title,omitempty" validate:"omitempty,max=255"`
	MiniappFooterText      *string `json:"miniapp_footer_text,omitempty" validate:"omitempty,max=1000"`
	MiniappBackgroundColor *string `json:"miniapp_background_color,omitempty"`
	MiniappTextColor       *string `json:"miniapp_text_color,omitempty"`
	MiniappHeadingColor    *string `json:"miniapp_heading_color,omitempty"`
	MiniappPriceColor      *string `json:"miniapp_price_color,omitempty"`
	MiniappHintColor       *string `json:"miniapp_hint_color,omitempty"`
	MiniappCardBgColor     *string `json:"miniapp_card_bg_color,omitempty"`
}

// MiniappSettings is the public subset consumed by the storefront.
type MiniappSettings struct {
	ShopName            string `json:"shop_name"`
	SectionTitle        string `json:"section_title"`
	FooterText          string `json:"footer_text"`
	BackgroundColor     string `json:"background_color"`
	BackgroundImage     string `json:"background_image"`
	TextColor           string `json:"text_color"`
	HeadingColor        string `json:"heading_color"`
	PriceColor          string `json:"price_color"`
	HintColor           string `json:"hint_color"`
	CardBgColor         string `json:"card_bg_color"`
	ContactTelegramLink string `json:"contact_telegram_link"`
}
