package dto

// AssetDTO is one row of site_assets.
type AssetDTO struct {
	AssetID   string
	Kind      string
	FilePath  string
	Mime      *string
	Filename  *string
	CreatedAt *string
}
