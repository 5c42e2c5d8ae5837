package m_variant

// Field constants for the product_variants table (interleaved in products).
const (
	TableName = "product_variants"

	ColProductID   = "product_id"
	ColVariantID   = "variant_id"
	ColOptionName  = "option_name"
	ColOptionValue = "option_value"
	ColStockQty    = "stock_qty"
	ColInOrderQty  = "in_order_qty"
	ColSortOrder   = "sort_order"
)
