package m_setting

// Field constants for the site_settings key/value table.
const (
	TableName = "site_settings"

	ColKey       = "setting_key"
	ColValue     = "setting_value"
	ColUpdatedAt = "updated_at"
)
