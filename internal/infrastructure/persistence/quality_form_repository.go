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

// GormQualityFormRepository implements QualityFormRepository using GORM
type GormQualityFormRepository struct {
	db *gorm.DB
}

// NewGormQualityFormRepository creates a new GormQualityFormRepository
func NewGormQualityFormRepository(db *gorm.DB) *GormQualityFormRepository {
	return &GormQualityFormRepository{db: db}
}

// Create creates a new quality form
func (r *GormQualityFormRepository) Create(ctx context.Context, form *production.QualityForm) error {
	model := models.QualityFormModelFromDomain(form)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing quality form
func (r *GormQualityFormRepository) Update(ctx context.Context, form *production.QualityForm) error {
	model := models.QualityFormModelFromDomain(form)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a quality form by ID
func (r *GormQualityFormRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.QualityForm, error) {
	var model models.QualityFormModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindLatestByOrder returns the most recently created form for the order
func (r *GormQualityFormRepository) FindLatestByOrder(ctx context.Context, orderID uuid.UUID) (*production.QualityForm, error) {
	var model models.QualityFormModel
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
func (r *GormQualityFormRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*production.QualityForm, error) {
	var modelList []models.QualityFormModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, err
	}

	forms := make([]*production.QualityForm, 0, len(modelList))
	for i := range modelList {
		forms = append(forms, modelList[i].ToDomain())
	}
	return forms, nil
}

// CountByOrder returns the number of forms recorded for the order
func (r *GormQualityFormRepository) CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.QualityFormModel{}).
		Where("order_id = ?", orderID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ production.QualityFormRepository = (*GormQualityFormRepository)(nil)
