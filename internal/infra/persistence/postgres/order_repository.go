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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order header first and the line items second, in two
// separate statements. A failure between the two leaves a header without
// items; the next full refresh surfaces it as an empty order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderWriteFailed.WrapMessage("invalid retailer or wholesaler reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	if len(order.Items) == 0 {
		return nil
	}

	itemModels := make([]*model.OrderItemModel, 0, len(order.Items))
	for i := range order.Items {
		itemModels = append(itemModels, fromOrderItemDomain(orderM.ID, &order.Items[i]))
	}

	if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
	}

	return nil
}

// Update replaces the mutable columns of the order header. Line items are
// immutable once written. An absent id is a silent no-op.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	columns := map[string]any{
		"status":         order.Status.String(),
		"payment_status": order.PaymentStatus.String(),
		"notes":          order.Notes,
		"pickup_time":    order.PickupTime,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(columns)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}

	return nil
}

// ListAll returns every order with its line items attached. Orders and items
// are fetched in two queries and joined in memory by order id.
func (repo *orderRepository) ListAll(ctx context.Context) ([]entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).Order("created_at").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	var itemModels []*model.OrderItemModel
	if err := repo.db.WithContext(ctx).Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list order items")
	}

	itemsByOrder := make(map[string][]entity.OrderItem, len(orderModels))
	for _, itemM := range itemModels {
		itemsByOrder[itemM.OrderID] = append(itemsByOrder[itemM.OrderID], *toOrderItemDomain(itemM))
	}

	orders := make([]entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order := toOrderDomain(orderM)
		order.Items = itemsByOrder[orderM.ID]
		orders = append(orders, *order)
	}

	return orders, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity. Items
// are attached by the caller.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:            data.ID,
		RetailerID:    data.RetailerID,
		WholesalerID:  data.WholesalerID,
		Total:         parseNumeric(data.Total),
		Status:        entity.OrderStatus(data.Status),
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		PickupTime:    data.PickupTime,
		Notes:         data.Notes,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:            data.ID,
		RetailerID:    data.RetailerID,
		WholesalerID:  data.WholesalerID,
		Total:         formatNumeric(data.Total),
		Status:        data.Status.String(),
		PaymentStatus: data.PaymentStatus.String(),
		PickupTime:    data.PickupTime,
		Notes:         data.Notes,
	}
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderItem.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ProductID:   data.ProductID,
		ProductName: data.ProductName,
		Quantity:    data.Quantity,
		Price:       parseNumeric(data.Price),
		Total:       parseNumeric(data.Total),
	}
}

// fromOrderItemDomain converts a domain OrderItem to a GORM OrderItemModel.
func fromOrderItemDomain(orderID string, data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		OrderID:     orderID,
		ProductID:   data.ProductID,
		ProductName: data.ProductName,
		Quantity:    data.Quantity,
		Price:       formatNumeric(data.Price),
		Total:       formatNumeric(data.Total),
	}
}
