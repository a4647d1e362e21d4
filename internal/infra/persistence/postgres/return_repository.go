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

// returnRepository implements the repository.ReturnRepository interface.
type returnRepository struct {
	db *gorm.DB
}

// NewReturnRepository is the constructor for returnRepository.
func NewReturnRepository(db *gorm.DB) repository.ReturnRepository {
	return &returnRepository{db: db}
}

// Create persists the return header first and the returned lines second, in
// two separate statements, mirroring order creation.
func (repo *returnRepository) Create(ctx context.Context, request *entity.ReturnRequest) error {
	requestM := fromReturnRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReturnNotFound.WrapMessage("invalid order reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create return request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	if len(request.Items) == 0 {
		return nil
	}

	itemModels := make([]*model.ReturnItemModel, 0, len(request.Items))
	for i := range request.Items {
		itemModels = append(itemModels, fromReturnItemDomain(requestM.ID, &request.Items[i]))
	}

	if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create return items")
	}

	return nil
}

// Update replaces the mutable columns of the return header, including the
// processing verdict. Returned lines are immutable once written. An absent id
// is a silent no-op.
func (repo *returnRepository) Update(ctx context.Context, request *entity.ReturnRequest) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReturnRequestModel{}).
		Where("id = ?", request.ID).
		Updates(map[string]any{
			"status":           request.Status.String(),
			"priority":         request.Priority.String(),
			"approved_amount":  formatNumericPtr(request.ApprovedAmount),
			"processed_by":     strPtrOrNil(request.ProcessedBy),
			"processed_at":     request.ProcessedAt,
			"rejection_reason": strPtrOrNil(request.RejectionReason),
			"refund_method":    strPtrOrNil(request.RefundMethod.String()),
			"tracking_number":  strPtrOrNil(request.TrackingNumber),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update return request")
	}

	return nil
}

// ListAll returns every return request with its returned lines attached,
// fetched in two queries and joined in memory by request id.
func (repo *returnRepository) ListAll(ctx context.Context) ([]entity.ReturnRequest, error) {
	var requestModels []*model.ReturnRequestModel

	if err := repo.db.WithContext(ctx).Order("created_at").Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list return requests")
	}

	var itemModels []*model.ReturnItemModel
	if err := repo.db.WithContext(ctx).Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list return items")
	}

	itemsByRequest := make(map[string][]entity.ReturnItem, len(requestModels))
	for _, itemM := range itemModels {
		itemsByRequest[itemM.ReturnRequestID] = append(itemsByRequest[itemM.ReturnRequestID], *toReturnItemDomain(itemM))
	}

	requests := make([]entity.ReturnRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		request := toReturnRequestDomain(requestM)
		request.Items = itemsByRequest[requestM.ID]
		requests = append(requests, *request)
	}

	return requests, nil
}

// --- Mapper Functions ---

// toReturnRequestDomain converts a GORM ReturnRequestModel to a domain
// ReturnRequest entity. Items are attached by the caller.
func toReturnRequestDomain(data *model.ReturnRequestModel) *entity.ReturnRequest {
	if data == nil {
		return nil
	}

	return &entity.ReturnRequest{
		ID:              data.ID,
		OrderID:         data.OrderID,
		RetailerID:      data.RetailerID,
		WholesalerID:    data.WholesalerID,
		Reason:          data.Reason,
		Description:     data.Description,
		Status:          entity.ReturnStatus(data.Status),
		Priority:        entity.Priority(data.Priority),
		RequestedAmount: parseNumeric(data.RequestedAmount),
		ApprovedAmount:  parseNumericPtr(data.ApprovedAmount),
		Images:          data.Images,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		ProcessedBy:     derefStr(data.ProcessedBy),
		ProcessedAt:     data.ProcessedAt,
		RejectionReason: derefStr(data.RejectionReason),
		RefundMethod:    entity.RefundMethod(derefStr(data.RefundMethod)),
		TrackingNumber:  derefStr(data.TrackingNumber),
	}
}

// fromReturnRequestDomain converts a domain ReturnRequest entity to a GORM
// ReturnRequestModel.
func fromReturnRequestDomain(data *entity.ReturnRequest) *model.ReturnRequestModel {
	if data == nil {
		return nil
	}

	return &model.ReturnRequestModel{
		ID:              data.ID,
		OrderID:         data.OrderID,
		RetailerID:      data.RetailerID,
		WholesalerID:    data.WholesalerID,
		Reason:          data.Reason,
		Description:     data.Description,
		Status:          data.Status.String(),
		Priority:        data.Priority.String(),
		RequestedAmount: formatNumeric(data.RequestedAmount),
		ApprovedAmount:  formatNumericPtr(data.ApprovedAmount),
		Images:          data.Images,
		ProcessedBy:     strPtrOrNil(data.ProcessedBy),
		ProcessedAt:     data.ProcessedAt,
		RejectionReason: strPtrOrNil(data.RejectionReason),
		RefundMethod:    strPtrOrNil(data.RefundMethod.String()),
		TrackingNumber:  strPtrOrNil(data.TrackingNumber),
	}
}

// toReturnItemDomain converts a GORM ReturnItemModel to a domain ReturnItem.
func toReturnItemDomain(data *model.ReturnItemModel) *entity.ReturnItem {
	if data == nil {
		return nil
	}

	return &entity.ReturnItem{
		ProductID:   data.ProductID,
		ProductName: data.ProductName,
		Quantity:    data.Quantity,
		Reason:      data.Reason,
		Condition:   entity.ItemCondition(data.Condition),
		UnitPrice:   parseNumeric(data.UnitPrice),
		TotalRefund: parseNumeric(data.TotalRefund),
	}
}

// fromReturnItemDomain converts a domain ReturnItem to a GORM ReturnItemModel.
func fromReturnItemDomain(requestID string, data *entity.ReturnItem) *model.ReturnItemModel {
	if data == nil {
		return nil
	}

	return &model.ReturnItemModel{
		ReturnRequestID: requestID,
		ProductID:       data.ProductID,
		ProductName:     data.ProductName,
		Quantity:        data.Quantity,
		Reason:          data.Reason,
		Condition:       data.Condition.String(),
		UnitPrice:       formatNumeric(data.UnitPrice),
		TotalRefund:     formatNumeric(data.TotalRefund),
	}
}
