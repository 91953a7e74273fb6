package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hermes/backend/internal/domain/production"
	"github.com/hermes/backend/internal/domain/shared"
	"github.com/hermes/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create creates a new production order
func (r *GormOrderRepository) Create(ctx context.Context, order *production.ProductionOrder) error {
	model := models.ProductionOrderModelFromDomain(order)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing production order
func (r *GormOrderRepository) Update(ctx context.Context, order *production.ProductionOrder) error {
	model := models.ProductionOrderModelFromDomain(order)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a production order by ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.ProductionOrder, error) {
	var model models.ProductionOrderModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOrderNumber finds a production order by its exact order number
func (r *GormOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*production.ProductionOrder, error) {
	var model models.ProductionOrderModel
	if err := r.db.WithContext(ctx).
		Where("order_number = ?", orderNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

var _ production.OrderRepository = (*GormOrderRepository)(nil)
