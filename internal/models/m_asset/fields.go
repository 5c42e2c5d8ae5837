package m_asset

// Field constants for the site_assets table (files owned by the shop, not by a product).
const (
	TableName = "site_assets"

	ColAssetID   = "asset_id"
	ColKind      = "kind"
	ColFilePath  = "file_path"
	ColMime      = "mime"
	ColFilename  = "filename"
	ColCreatedAt = "created_at"
)

// KindBackground marks the storefront background image.
const KindBackground = "background"
