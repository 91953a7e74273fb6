package planning

import (
	"fmt"
	"time"

	"github.com/hermes/backend/internal/domain/shared"
)

// Fixed valid ranges for the plan fields
const (
	EstimatedOrdersMin = 1
	EstimatedOrdersMax = 100
	DieSizeMin         = 1.0 // mm
	DieSizeMax         = 10.0
	TonnageMin         = 0.0
	TonnageMax         = 1000.0
)

// PlanFields holds the mutable planning values for one day
type PlanFields struct {
	EstimatedOrders int
	DieSize         float64
	SoyTons         float64
	CornCakeTons    float64
}

// Validate checks every field against its fixed domain. All four fields
// are mandatory; the zero value of EstimatedOrders is below the minimum
// and therefore rejected.
func (f PlanFields) Validate() error {
	if f.EstimatedOrders < EstimatedOrdersMin || f.EstimatedOrders > EstimatedOrdersMax {
		return shared.NewValidationError("estimated_orders",
			fmt.Sprintf("must be between %d and %d", EstimatedOrdersMin, EstimatedOrdersMax))
	}
	if f.DieSize < DieSizeMin || f.DieSize > DieSizeMax {
		return shared.NewValidationError("die_size",
			fmt.Sprintf("must be between %g and %g", DieSizeMin, DieSizeMax))
	}
	if f.SoyTons < TonnageMin || f.SoyTons > TonnageMax {
		return shared.NewValidationError("soy_tons",
			fmt.Sprintf("must be between %g and %g", TonnageMin, TonnageMax))
	}
	if f.CornCakeTons < TonnageMin || f.CornCakeTons > TonnageMax {
		return shared.NewValidationError("corn_cake_tons",
			fmt.Sprintf("must be between %g and %g", TonnageMin, TonnageMax))
	}
	return nil
}

// DailyPlan is the single planning record for one calendar day.
// At most one plan exists per date; saves for an existing date overwrite
// the fields in place.
type DailyPlan struct {
	shared.BaseAggregateRoot
	Date time.Time
	PlanFields
}

// NormalizeDate truncates a timestamp to its calendar day in UTC.
// The unique index on daily plans is over this normalized value.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewDailyPlan creates a validated plan for the given date
func NewDailyPlan(date time.Time, fields PlanFields) (*DailyPlan, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	return &DailyPlan{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Date:              NormalizeDate(date),
		PlanFields:        fields,
	}, nil
}

// Overwrite replaces the plan fields, keeping the date and creation time
func (p *DailyPlan) Overwrite(fields PlanFields) error {
	if err := fields.Validate(); err != nil {
		return err
	}

	p.PlanFields = fields
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}
