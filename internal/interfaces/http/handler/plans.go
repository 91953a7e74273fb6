package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	planningapp "github.com/hermes/backend/internal/application/planning"
	"github.com/hermes/backend/internal/domain/planning"
)

// PlansHandler handles daily plan endpoints
type PlansHandler struct {
	BaseHandler
	planService *planningapp.PlanService
	// now is the clock for "today"; overridable in tests
	now func() time.Time
}

// NewPlansHandler creates a new PlansHandler
func NewPlansHandler(planService *planningapp.PlanService) *PlansHandler {
	return &PlansHandler{
		planService: planService,
		now:         time.Now,
	}
}

// UpsertPlanRequest represents the daily plan request body. The tonnage
// fields are pointers so a missing field is rejected while an explicit
// zero, which is inside the valid range, is accepted.
type UpsertPlanRequest struct {
	EstimatedOrders int      `json:"estimated_orders" binding:"required"`
	DieSize         float64  `json:"die_size" binding:"required"`
	SoyTons         *float64 `json:"soy_tons" binding:"required"`
	CornCakeTons    *float64 `json:"corn_cake_tons" binding:"required"`
}

// PlanResponse represents a daily plan
type PlanResponse struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"`
	EstimatedOrders int       `json:"estimated_orders"`
	DieSize         float64   `json:"die_size"`
	SoyTons         float64   `json:"soy_tons"`
	CornCakeTons    float64   `json:"corn_cake_tons"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newPlanResponse(plan *planning.DailyPlan) PlanResponse {
	return PlanResponse{
		ID:              plan.ID.String(),
		Date:            plan.Date.Format("2006-01-02"),
		EstimatedOrders: plan.EstimatedOrders,
		DieSize:         plan.DieSize,
		SoyTons:         plan.SoyTons,
		CornCakeTons:    plan.CornCakeTons,
		CreatedAt:       plan.CreatedAt,
		UpdatedAt:       plan.UpdatedAt,
	}
}

// GetToday returns the plan for the current day, 404 when none exists
func (h *PlansHandler) GetToday(c *gin.Context) {
	plan, err := h.planService.ForDate(c.Request.Context(), h.now())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, newPlanResponse(plan))
}

// UpsertToday creates or replaces the plan for the current day
func (h *PlansHandler) UpsertToday(c *gin.Context) {
	var req UpsertPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	plan, err := h.planService.Upsert(c.Request.Context(), h.now(), planning.PlanFields{
		EstimatedOrders: req.EstimatedOrders,
		DieSize:         req.DieSize,
		SoyTons:         *req.SoyTons,
		CornCakeTons:    *req.CornCakeTons,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, newPlanResponse(plan))
}

// RegisterRoutes registers plan routes on the router group
func (h *PlansHandler) RegisterRoutes(rg *gin.RouterGroup) {
	plans := rg.Group("/plans")
	plans.GET("/today", h.GetToday)
	plans.PUT("/today", h.UpsertToday)
}
