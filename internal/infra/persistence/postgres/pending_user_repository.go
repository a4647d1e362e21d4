package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pendingUserRepository implements the repository.PendingUserRepository interface.
type pendingUserRepository struct {
	db *gorm.DB
}

// NewPendingUserRepository is the constructor for pendingUserRepository.
func NewPendingUserRepository(db *gorm.DB) repository.PendingUserRepository {
	return &pendingUserRepository{db: db}
}

// Create persists a new registration application.
func (repo *pendingUserRepository) Create(ctx context.Context, pending *entity.PendingUser) error {
	pendingM := fromPendingUserDomain(pending)

	if err := repo.db.WithContext(ctx).Create(pendingM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required registration information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pending user")
	}

	pending.ID = pendingM.ID
	pending.SubmittedAt = pendingM.SubmittedAt

	return nil
}

// FindByID retrieves a single staging record.
func (repo *pendingUserRepository) FindByID(ctx context.Context, id string) (*entity.PendingUser, error) {
	var pendingM model.PendingUserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pendingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPendingUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending user by id")
	}

	return toPendingUserDomain(&pendingM), nil
}

// MarkApproved stamps the staging row as approved.
func (repo *pendingUserRepository) MarkApproved(ctx context.Context, id, adminID string, reviewedAt time.Time) error {
	return repo.stampReview(ctx, id, map[string]any{
		"status":      "approved",
		"reviewed_at": reviewedAt,
		"reviewed_by": adminID,
	})
}

// MarkRejected stamps the staging row as rejected with a reason.
func (repo *pendingUserRepository) MarkRejected(ctx context.Context, id, adminID, reason string, reviewedAt time.Time) error {
	return repo.stampReview(ctx, id, map[string]any{
		"status":           "rejected",
		"reviewed_at":      reviewedAt,
		"reviewed_by":      adminID,
		"rejection_reason": reason,
	})
}

func (repo *pendingUserRepository) stampReview(ctx context.Context, id string, columns map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PendingUserModel{}).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to stamp pending user review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPendingUserNotFound
	}

	return nil
}

// ListAll returns every staging row still awaiting review.
func (repo *pendingUserRepository) ListAll(ctx context.Context) ([]entity.PendingUser, error) {
	var pendingModels []*model.PendingUserModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", "pending").
		Order("submitted_at").
		Find(&pendingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pending users")
	}

	pending := make([]entity.PendingUser, 0, len(pendingModels))
	for _, pendingM := range pendingModels {
		pending = append(pending, *toPendingUserDomain(pendingM))
	}

	return pending, nil
}

// --- Mapper Functions ---

// toPendingUserDomain converts a GORM PendingUserModel to a domain PendingUser entity.
func toPendingUserDomain(data *model.PendingUserModel) *entity.PendingUser {
	if data == nil {
		return nil
	}

	return &entity.PendingUser{
		ID:                 data.ID,
		Name:               data.Name,
		Email:              data.Email,
		Role:               entity.Role(data.Role),
		BusinessName:       data.BusinessName,
		Phone:              data.Phone,
		Address:            data.Address,
		RegistrationReason: data.RegistrationReason,
		SubmittedAt:        data.SubmittedAt,
		Documents:          data.Documents,
	}
}

// fromPendingUserDomain converts a domain PendingUser entity to a GORM PendingUserModel.
func fromPendingUserDomain(data *entity.PendingUser) *model.PendingUserModel {
	if data == nil {
		return nil
	}

	return &model.PendingUserModel{
		ID:                 data.ID,
		Name:               data.Name,
		Email:              data.Email,
		Role:               data.Role.String(),
		BusinessName:       data.BusinessName,
		Phone:              data.Phone,
		Address:            data.Address,
		RegistrationReason: data.RegistrationReason,
		Documents:          data.Documents,
	}
}
