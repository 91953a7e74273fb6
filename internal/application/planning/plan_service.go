package planning

import (
	"context"
	"errors"
	"time"

	"github.com/hermes/backend/internal/domain/planning"
	"github.com/hermes/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PlanService handles the single daily production plan. One plan exists
// per calendar date; saving for a date that already has one overwrites its
// fields in place. A single-writer assumption applies, so no locking is
// used beyond the unique index on the date.
type PlanService struct {
	planRepo planning.DailyPlanRepository
	logger   *zap.Logger
}

// NewPlanService creates a new plan service
func NewPlanService(planRepo planning.DailyPlanRepository, logger *zap.Logger) *PlanService {
	return &PlanService{
		planRepo: planRepo,
		logger:   logger,
	}
}

// Upsert stores the plan for the given date, overwriting an existing one
func (s *PlanService) Upsert(ctx context.Context, date time.Time, fields planning.PlanFields) (*planning.DailyPlan, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	day := planning.NormalizeDate(date)
	existing, err := s.planRepo.FindByDate(ctx, day)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, shared.NewStorageError(err)
	}

	if existing != nil {
		if err := existing.Overwrite(fields); err != nil {
			return nil, err
		}
		if err := s.planRepo.Update(ctx, existing); err != nil {
			return nil, shared.NewStorageError(err)
		}
		s.logger.Info("Daily plan updated", zap.Time("date", day))
		return existing, nil
	}

	plan, err := planning.NewDailyPlan(day, fields)
	if err != nil {
		return nil, err
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, shared.NewStorageError(err)
	}

	s.logger.Info("Daily plan created", zap.Time("date", day))
	return plan, nil
}

// ForDate returns the plan for the given date, or shared.ErrNotFound
func (s *PlanService) ForDate(ctx context.Context, date time.Time) (*planning.DailyPlan, error) {
	plan, err := s.planRepo.FindByDate(ctx, planning.NormalizeDate(date))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewStorageError(err)
	}
	return plan, nil
}
