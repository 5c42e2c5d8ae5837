package m_spec

// Field constants for the product_specs table (interleaved in products).
const (
	TableName = "product_specs"

	ColProductID = "product_id"
	ColSpecID    = "spec_id"
	ColName      = "name"
	ColValue     = "value"
	ColUnit      = "unit"
	ColSortOrder = "sort_order"
)
