package model

import "time"

// PlatformSettingModel is the GORM-specific struct for the
// 'platform_settings' table, one row per setting key. Value holds the
// JSON-encoded setting value.
type PlatformSettingModel struct {
	Key       string `gorm:"type:text;primary_key"`
	Value     string `gorm:"type:jsonb;not null"`
	UpdatedBy string `gorm:"type:uuid"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlatformSettingModel) TableName() string {
	return "platform_settings"
}
