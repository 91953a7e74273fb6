package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/hermes/backend/internal/domain/planning"
	"github.com/hermes/backend/internal/domain/shared"
	"github.com/hermes/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDailyPlanRepository implements DailyPlanRepository using GORM
type GormDailyPlanRepository struct {
	db *gorm.DB
}

// NewGormDailyPlanRepository creates a new GormDailyPlanRepository
func NewGormDailyPlanRepository(db *gorm.DB) *GormDailyPlanRepository {
	return &GormDailyPlanRepository{db: db}
}

// Create creates a new daily plan
func (r *GormDailyPlanRepository) Create(ctx context.Context, plan *planning.DailyPlan) error {
	model := models.DailyPlanModelFromDomain(plan)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing daily plan
func (r *GormDailyPlanRepository) Update(ctx context.Context, plan *planning.DailyPlan) error {
	model := models.DailyPlanModelFromDomain(plan)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByDate finds the plan for the given calendar day
func (r *GormDailyPlanRepository) FindByDate(ctx context.Context, date time.Time) (*planning.DailyPlan, error) {
	var model models.DailyPlanModel
	if err := r.db.WithContext(ctx).
		Where("date = ?", planning.NormalizeDate(date)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// CountByDate returns the number of plans stored for the given day
func (r *GormDailyPlanRepository) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DailyPlanModel{}).
		Where("date = ?", planning.NormalizeDate(date)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ planning.DailyPlanRepository = (*GormDailyPlanRepository)(nil)
