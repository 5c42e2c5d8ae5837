package m_attachment

// Field constants for the product_attachments table (interleaved in products).
const (
	TableName = "product_attachments"

	ColProductID    = "product_id"
	ColAttachmentID = "attachment_id"
	ColTitle        = "title"
	ColFilePath     = "file_path"
	ColMime         = "mime"
	ColSizeBytes    = "size_bytes"
	ColSortOrder    = "sort_order"
	ColCreatedAt    = "created_at"
)
