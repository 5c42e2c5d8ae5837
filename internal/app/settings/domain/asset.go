package domain

import (
	"time"
)

// AssetKindBackground marks the storefront background in site_assets.
const AssetKindBackground = "background"

// Asset is a file owned by the shop rather than by a product.
type Asset struct {
	ID        string
	Kind      string
	Key       string
	Mime      string
	Filename  string
	CreatedAt time.Time
}

// URL is the public address of the asset.
func (a Asset) URL() string {
	return FileURLPrefix + a.ID
}

// BackgroundKey is the storage key of a background image. The extension defaults to .jpg.
func BackgroundKey(id, ext string) string {
	if ext == "" {
		ext = ".jpg"
	}
	return "settings/background_" + id + ext
}
