package entity

// PlatformSettings holds the admin-tunable configuration of the marketplace.
// Settings are persisted remotely as key/value rows and mirrored into local
// state as a whole struct.
type PlatformSettings struct {
	UserRegistrationEnabled   bool    `json:"user_registration_enabled"`
	EmailNotificationsEnabled bool    `json:"email_notifications_enabled"`
	AutoApprovePromotions     bool    `json:"auto_approve_promotions"`
	MaintenanceMode           bool    `json:"maintenance_mode"`
	CommissionRate            float64 `json:"commission_rate"` // Percentage taken per completed order.
	MinimumOrderValue         float64 `json:"minimum_order_value"`
	MaxProductsPerWholesaler  int     `json:"max_products_per_wholesaler"`
	SupportResponseTime       int     `json:"support_response_time"` // Target first-response time in hours.
	TwoFactorRequired         bool    `json:"two_factor_required"`
	DataEncryptionEnabled     bool    `json:"data_encryption_enabled"`
	AuditLoggingEnabled       bool    `json:"audit_logging_enabled"`
}

// SettingsPatch carries partial settings updates. Nil fields are left
// untouched when the patch is applied.
type SettingsPatch struct {
	UserRegistrationEnabled   *bool    `json:"user_registration_enabled,omitempty"`
	EmailNotificationsEnabled *bool    `json:"email_notifications_enabled,omitempty"`
	AutoApprovePromotions     *bool    `json:"auto_approve_promotions,omitempty"`
	MaintenanceMode           *bool    `json:"maintenance_mode,omitempty"`
	CommissionRate            *float64 `json:"commission_rate,omitempty"`
	MinimumOrderValue         *float64 `json:"minimum_order_value,omitempty"`
	MaxProductsPerWholesaler  *int     `json:"max_products_per_wholesaler,omitempty"`
	SupportResponseTime       *int     `json:"support_response_time,omitempty"`
	TwoFactorRequired         *bool    `json:"two_factor_required,omitempty"`
	DataEncryptionEnabled     *bool    `json:"data_encryption_enabled,omitempty"`
	AuditLoggingEnabled       *bool    `json:"audit_logging_enabled,omitempty"`
}

// DefaultPlatformSettings returns the factory defaults used at startup and by
// the reset action.
func DefaultPlatformSettings() PlatformSettings {
	return PlatformSettings{
		UserRegistrationEnabled:   true,
		EmailNotificationsEnabled: true,
		AutoApprovePromotions:     false,
		MaintenanceMode:           false,
		CommissionRate:            5,
		MinimumOrderValue:         100,
		MaxProductsPerWholesaler:  1000,
		SupportResponseTime:       24,
		TwoFactorRequired:         false,
		DataEncryptionEnabled:     true,
		AuditLoggingEnabled:       true,
	}
}

// Apply merges the patch into the settings, returning the merged copy.
func (s PlatformSettings) Apply(patch SettingsPatch) PlatformSettings {
	if patch.UserRegistrationEnabled != nil {
		s.UserRegistrationEnabled = *patch.UserRegistrationEnabled
	}
	if patch.EmailNotificationsEnabled != nil {
		s.EmailNotificationsEnabled = *patch.EmailNotificationsEnabled
	}
	if patch.AutoApprovePromotions != nil {
		s.AutoApprovePromotions = *patch.AutoApprovePromotions
	}
	if patch.MaintenanceMode != nil {
		s.MaintenanceMode = *patch.MaintenanceMode
	}
	if patch.CommissionRate != nil {
		s.CommissionRate = *patch.CommissionRate
	}
	if patch.MinimumOrderValue != nil {
		s.MinimumOrderValue = *patch.MinimumOrderValue
	}
	if patch.MaxProductsPerWholesaler != nil {
		s.MaxProductsPerWholesaler = *patch.MaxProductsPerWholesaler
	}
	if patch.SupportResponseTime != nil {
		s.SupportResponseTime = *patch.SupportResponseTime
	}
	if patch.TwoFactorRequired != nil {
		s.TwoFactorRequired = *patch.TwoFactorRequired
	}
	if patch.DataEncryptionEnabled != nil {
		s.DataEncryptionEnabled = *patch.DataEncryptionEnabled
	}
	if patch.AuditLoggingEnabled != nil {
		s.AuditLoggingEnabled = *patch.AuditLoggingEnabled
	}

	return s
}
