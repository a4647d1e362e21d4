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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product listing.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductWriteFailed.WrapMessage("invalid wholesaler reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProductWriteFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update replaces the mutable columns of an existing product row. An absent
// id is a silent no-op, matching the local reducer.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":               product.Name,
			"description":        product.Description,
			"price":              formatNumeric(product.Price),
			"stock":              product.Stock,
			"min_order_quantity": product.MinOrderQuantity,
			"category":           product.Category,
			"image_url":          product.ImageURL,
			"available":          product.Available,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	return nil
}

// Delete removes a product row. Deleting an absent id is a silent no-op.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return nil
}

// ListAll returns every product row.
func (repo *productRepository) ListAll(ctx context.Context) ([]entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).Order("created_at").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, *toProductDomain(productM))
	}

	return products, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
// The numeric price column scans as text and is parsed here.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:               data.ID,
		WholesalerID:     data.WholesalerID,
		Name:             data.Name,
		Description:      data.Description,
		Price:            parseNumeric(data.Price),
		Stock:            data.Stock,
		MinOrderQuantity: data.MinOrderQuantity,
		Category:         data.Category,
		ImageURL:         data.ImageURL,
		Available:        data.Available,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:               data.ID,
		WholesalerID:     data.WholesalerID,
		Name:             data.Name,
		Description:      data.Description,
		Price:            formatNumeric(data.Price),
		Stock:            data.Stock,
		MinOrderQuantity: data.MinOrderQuantity,
		Category:         data.Category,
		ImageURL:         data.ImageURL,
		Available:        data.Available,
	}
}
