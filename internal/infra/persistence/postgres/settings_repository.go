package postgres

import (
	"context"
	"encoding/json"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the repository.SettingsRepository interface.
// Each settings field is stored as its own key/value row with a jsonb value.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// Load reads every settings row and folds it over the factory defaults, so
// missing keys keep their default value and unknown keys are ignored.
func (repo *settingsRepository) Load(ctx context.Context) (entity.PlatformSettings, error) {
	settings := entity.DefaultPlatformSettings()

	var rows []*model.PlatformSettingModel
	if err := repo.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return settings, errors.Wrap(err, "failed to load platform settings")
	}

	kv := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		kv[row.Key] = json.RawMessage(row.Value)
	}

	raw, err := json.Marshal(kv)
	if err != nil {
		return settings, errors.Wrap(err, "failed to fold platform settings")
	}
	if err := json.Unmarshal(raw, &settings); err != nil {
		return settings, errors.Wrap(err, "failed to decode platform settings")
	}

	return settings, nil
}

// Save upserts one row per settings field, stamping each with the admin who
// performed the update.
func (repo *settingsRepository) Save(ctx context.Context, settings entity.PlatformSettings, updatedBy string) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "failed to encode platform settings")
	}

	var kv map[string]json.RawMessage
	if err := json.Unmarshal(raw, &kv); err != nil {
		return errors.Wrap(err, "failed to split platform settings")
	}

	rows := make([]*model.PlatformSettingModel, 0, len(kv))
	for key, value := range kv {
		rows = append(rows, &model.PlatformSettingModel{
			Key:       key,
			Value:     string(value),
			UpdatedBy: updatedBy,
		})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "updated_at"}),
		}).
		Create(&rows).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save platform settings")
	}

	return nil
}
