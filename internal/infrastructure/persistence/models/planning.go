package models

import (
	"time"

	"github.com/hermes/backend/internal/domain/planning"
)

// DailyPlanModel is the persistence model for the DailyPlan aggregate.
// The unique index over the normalized date enforces one plan per day.
type DailyPlanModel struct {
	AggregateModel
	Date            time.Time `gorm:"type:date;not null;uniqueIndex"`
	EstimatedOrders int       `gorm:"not null"`
	DieSize         float64   `gorm:"not null"`
	SoyTons         float64   `gorm:"not null"`
	CornCakeTons    float64   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DailyPlanModel) TableName() string {
	return "daily_plans"
}

// ToDomain converts the persistence model to a domain DailyPlan.
func (m *DailyPlanModel) ToDomain() *planning.DailyPlan {
	return &planning.DailyPlan{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Date:              planning.NormalizeDate(m.Date),
		PlanFields: planning.PlanFields{
			EstimatedOrders: m.EstimatedOrders,
			DieSize:         m.DieSize,
			SoyTons:         m.SoyTons,
			CornCakeTons:    m.CornCakeTons,
		},
	}
}

// FromDomain populates the persistence model from a domain DailyPlan.
func (m *DailyPlanModel) FromDomain(p *planning.DailyPlan) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Date = planning.NormalizeDate(p.Date)
	m.EstimatedOrders = p.EstimatedOrders
	m.DieSize = p.DieSize
	m.SoyTons = p.SoyTons
	m.CornCakeTons = p.CornCakeTons
}

// DailyPlanModelFromDomain creates a new persistence model from a domain plan.
func DailyPlanModelFromDomain(p *planning.DailyPlan) *DailyPlanModel {
	m := &DailyPlanModel{}
	m.FromDomain(p)
	return m
}
