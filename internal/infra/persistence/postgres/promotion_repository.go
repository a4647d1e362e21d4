package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// promotionRepository implements the repository.PromotionRepository interface.
type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepository{db: db}
}

// Create persists a newly submitted promotion.
func (repo *promotionRepository) Create(ctx context.Context, promotion *entity.Promotion) error {
	promotionM := fromPromotionDomain(promotion)

	if err := repo.db.WithContext(ctx).Create(promotionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid wholesaler reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create promotion")
	}

	promotion.ID = promotionM.ID
	promotion.SubmittedAt = promotionM.SubmittedAt

	return nil
}

// Update replaces the mutable columns of an existing promotion row, including
// the review verdict. An absent id is a silent no-op.
func (repo *promotionRepository) Update(ctx context.Context, promotion *entity.Promotion) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PromotionModel{}).
		Where("id = ?", promotion.ID).
		Updates(map[string]any{
			"title":            promotion.Title,
			"description":      promotion.Description,
			"discount":         formatNumeric(promotion.Discount),
			"valid_from":       promotion.ValidFrom,
			"valid_to":         promotion.ValidTo,
			"active":           promotion.Active,
			"product_ids":      fromPromotionDomain(promotion).ProductIDs,
			"status":           promotion.Status.String(),
			"reviewed_at":      promotion.ReviewedAt,
			"reviewed_by":      strPtrOrNil(promotion.ReviewedBy),
			"rejection_reason": strPtrOrNil(promotion.RejectionReason),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update promotion")
	}

	return nil
}

// ListAll returns every promotion row.
func (repo *promotionRepository) ListAll(ctx context.Context) ([]entity.Promotion, error) {
	var promotionModels []*model.PromotionModel

	if err := repo.db.WithContext(ctx).Order("submitted_at").Find(&promotionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	promotions := make([]entity.Promotion, 0, len(promotionModels))
	for _, promotionM := range promotionModels {
		promotions = append(promotions, *toPromotionDomain(promotionM))
	}

	return promotions, nil
}

// --- Mapper Functions ---

// toPromotionDomain converts a GORM PromotionModel to a domain Promotion entity.
func toPromotionDomain(data *model.PromotionModel) *entity.Promotion {
	if data == nil {
		return nil
	}

	return &entity.Promotion{
		ID:              data.ID,
		WholesalerID:    data.WholesalerID,
		Title:           data.Title,
		Description:     data.Description,
		Discount:        parseNumeric(data.Discount),
		ValidFrom:       data.ValidFrom,
		ValidTo:         data.ValidTo,
		Active:          data.Active,
		ProductIDs:      data.ProductIDs,
		Status:          entity.PromotionStatus(data.Status),
		SubmittedAt:     data.SubmittedAt,
		ReviewedAt:      data.ReviewedAt,
		ReviewedBy:      derefStr(data.ReviewedBy),
		RejectionReason: derefStr(data.RejectionReason),
	}
}

// fromPromotionDomain converts a domain Promotion entity to a GORM PromotionModel.
func fromPromotionDomain(data *entity.Promotion) *model.PromotionModel {
	if data == nil {
		return nil
	}

	return &model.PromotionModel{
		ID:              data.ID,
		WholesalerID:    data.WholesalerID,
		Title:           data.Title,
		Description:     data.Description,
		Discount:        formatNumeric(data.Discount),
		ValidFrom:       data.ValidFrom,
		ValidTo:         data.ValidTo,
		Active:          data.Active,
		ProductIDs:      data.ProductIDs,
		Status:          data.Status.String(),
		ReviewedAt:      data.ReviewedAt,
		ReviewedBy:      strPtrOrNil(data.ReviewedBy),
		RejectionReason: strPtrOrNil(data.RejectionReason),
	}
}
