package planning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPlanFields() PlanFields {
	return PlanFields{
		EstimatedOrders: 12,
		DieSize:         4.5,
		SoyTons:         120.0,
		CornCakeTons:    80.5,
	}
}

func TestPlanFields_Validate(t *testing.T) {
	t.Run("accepts values within ranges", func(t *testing.T) {
		assert.NoError(t, validPlanFields().Validate())
	})

	t.Run("rejects missing estimated orders", func(t *testing.T) {
		f := validPlanFields()
		f.EstimatedOrders = 0

		err := f.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "estimated_orders")
	})

	t.Run("rejects out-of-range fields", func(t *testing.T) {
		cases := []struct {
			field  string
			mutate func(*PlanFields)
		}{
			{"estimated_orders", func(f *PlanFields) { f.EstimatedOrders = 101 }},
			{"die_size", func(f *PlanFields) { f.DieSize = 0.5 }},
			{"soy_tons", func(f *PlanFields) { f.SoyTons = -1 }},
			{"corn_cake_tons", func(f *PlanFields) { f.CornCakeTons = 1200 }},
		}

		for _, tc := range cases {
			t.Run(tc.field, func(t *testing.T) {
				f := validPlanFields()
				tc.mutate(&f)

				err := f.Validate()
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.field)
			})
		}
	})
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	stamp := time.Date(2024, 3, 15, 23, 45, 12, 999, loc)

	normalized := NormalizeDate(stamp)

	assert.Equal(t, 2024, normalized.Year())
	assert.Equal(t, time.March, normalized.Month())
	assert.Equal(t, 15, normalized.Day())
	assert.Equal(t, 0, normalized.Hour())
	assert.Equal(t, time.UTC, normalized.Location())

	// Same calendar day always maps to the same key
	other := time.Date(2024, 3, 15, 1, 0, 0, 0, loc)
	assert.Equal(t, normalized, NormalizeDate(other))
}

func TestNewDailyPlan(t *testing.T) {
	t.Run("creates plan with normalized date", func(t *testing.T) {
		now := time.Now()
		plan, err := NewDailyPlan(now, validPlanFields())

		require.NoError(t, err)
		assert.Equal(t, NormalizeDate(now), plan.Date)
		assert.Equal(t, 12, plan.EstimatedOrders)
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		f := validPlanFields()
		f.DieSize = 20

		_, err := NewDailyPlan(time.Now(), f)
		assert.Error(t, err)
	})
}

func TestDailyPlan_Overwrite(t *testing.T) {
	plan, err := NewDailyPlan(time.Now(), validPlanFields())
	require.NoError(t, err)

	originalDate := plan.Date
	originalCreatedAt := plan.CreatedAt
	originalVersion := plan.Version

	f := validPlanFields()
	f.EstimatedOrders = 30

	err = plan.Overwrite(f)
	require.NoError(t, err)
	assert.Equal(t, 30, plan.EstimatedOrders)
	assert.Equal(t, originalDate, plan.Date)
	assert.Equal(t, originalCreatedAt, plan.CreatedAt)
	assert.Equal(t, originalVersion+1, plan.Version)

	t.Run("invalid overwrite leaves plan untouched", func(t *testing.T) {
		bad := validPlanFields()
		bad.SoyTons = -5

		err := plan.Overwrite(bad)
		require.Error(t, err)
		assert.Equal(t, 30, plan.EstimatedOrders)
	})
}
