package repository

import (
	"context"

	"bazaar/internal/domain/entity"
)

// SettingsRepository handles persistence for platform settings, stored
// remotely as one key/value row per setting.
type SettingsRepository interface {
	// Load reads every settings row and folds it into a PlatformSettings
	// struct, starting from the factory defaults for missing keys.
	Load(ctx context.Context) (entity.PlatformSettings, error)

	// Save upserts one row per field of the given settings snapshot,
	// recording which admin performed the update.
	Save(ctx context.Context, settings entity.PlatformSettings, updatedBy string) error
}
