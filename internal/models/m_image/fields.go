package m_image

// Field constants for the product_images table (interleaved in products).
const (
	TableName = "product_images"

	ColProductID = "product_id"
	ColImageID   = "image_id"
	ColFilePath  = "file_path"
	ColMime      = "mime"
	ColSizeBytes = "size_bytes"
	ColAlt       = "alt"
	ColSortOrder = "sort_order"
	ColCreatedAt = "created_at"
)
