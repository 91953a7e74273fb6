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

// GormProductionFormRepository implements ProductionFormRepository using GORM
type GormProductionFormRepository struct {
	db *gorm.DB
}

// NewGormProductionFormRepository creates a new GormProductionFormRepository
func NewGormProductionFormRepository(db *gorm.DB) *GormProductionFormRepository {
	return &GormProductionFormRepository{db: db}
}

// Create creates a new production form
func (r *GormProductionFormRepository) Create(ctx context.Context, form *production.ProductionForm) error {
	model := models.ProductionFormModelFromDomain(form)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing production form
func (r *GormProductionFormRepository) Update(ctx context.Context, form *production.ProductionForm) error {
	model := models.ProductionFormModelFromDomain(form)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a production form by ID
func (r *GormProductionFormRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.ProductionForm, error) {
	var model models.ProductionFormModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindLatestByOrder returns the most recently created form for the order
func (r *GormProductionFormRepository) FindLatestByOrder(ctx context.Context, orderID uuid.UUID) (*production.ProductionForm, error) {
	var model models.ProductionFormModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListByOrder returns all forms for the order, newest first
func (r *GormProductionFormRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*production.ProductionForm, error) {
	var modelList []models.ProductionFormModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, err
	}

	forms := make([]*production.ProductionForm, 0, len(modelList))
	for i := range modelList {
		forms = append(forms, modelList[i].ToDomain())
	}
	return forms, nil
}

// CountByOrder returns the number of forms recorded for the order
func (r *GormProductionFormRepository) CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ProductionFormModel{}).
		Where("order_id = ?", orderID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ production.ProductionFormRepository = (*GormProductionFormRepository)(nil)
