package planning

import (
	"context"
	"time"
)

// DailyPlanRepository defines the persistence interface for daily plans
type DailyPlanRepository interface {
	Create(ctx context.Context, plan *DailyPlan) error
	Update(ctx context.Context, plan *DailyPlan) error
	// FindByDate looks up the plan for the normalized calendar date.
	// Returns shared.ErrNotFound when no plan exists for that day.
	FindByDate(ctx context.Context, date time.Time) (*DailyPlan, error)
	CountByDate(ctx context.Context, date time.Time) (int64, error)
}
