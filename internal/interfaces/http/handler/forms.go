package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	productionapp "github.com/hermes/backend/internal/application/production"
	"github.com/hermes/backend/internal/domain/production"
)

// FormsHandler handles form submission endpoints
type FormsHandler struct {
	BaseHandler
	submissionService *productionapp.SubmissionService
}

// NewFormsHandler creates a new FormsHandler
func NewFormsHandler(submissionService *productionapp.SubmissionService) *FormsHandler {
	return &FormsHandler{submissionService: submissionService}
}

// QualityMeasurementsRequest carries the quality form fields
type QualityMeasurementsRequest struct {
	Apariencia string  `json:"apariencia" binding:"required"`
	Color      string  `json:"color" binding:"required"`
	Olor       string  `json:"olor" binding:"required"`
	Humedad    float64 `json:"humedad" binding:"required"`
	Proteina   float64 `json:"proteina" binding:"required"`
	Grasa      float64 `json:"grasa" binding:"required"`
	Fibra      float64 `json:"fibra" binding:"required"`
	Cenizas    float64 `json:"cenizas" binding:"required"`
}

func (r QualityMeasurementsRequest) toDomain() *production.QualityMeasurements {
	return &production.QualityMeasurements{
		Apariencia: production.Grade(r.Apariencia),
		Color:      production.Grade(r.Color),
		Olor:       production.Grade(r.Olor),
		Humedad:    r.Humedad,
		Proteina:   r.Proteina,
		Grasa:      r.Grasa,
		Fibra:      r.Fibra,
		Cenizas:    r.Cenizas,
	}
}

// ProductionMeasurementsRequest carries the production form fields.
// Durabilidad is a pointer so a missing field is rejected while an
// explicit zero, which is inside the valid range, is accepted.
type ProductionMeasurementsRequest struct {
	Dieta        string   `json:"dieta" binding:"required"`
	Molienda     float64  `json:"molienda" binding:"required"`
	Durabilidad  *float64 `json:"durabilidad" binding:"required"`
	Dureza       int      `json:"dureza" binding:"required"`
	Temperatura  int      `json:"temperatura" binding:"required"`
	Peletizadora string   `json:"peletizadora" binding:"required"`
}

func (r ProductionMeasurementsRequest) toDomain() *production.ProductionMeasurements {
	return &production.ProductionMeasurements{
		Dieta:        r.Dieta,
		Molienda:     r.Molienda,
		Durabilidad:  *r.Durabilidad,
		Dureza:       r.Dureza,
		Temperatura:  r.Temperatura,
		Peletizadora: r.Peletizadora,
	}
}

// SubmitFormRequest represents the form submission request body. Exactly
// one of Quality and Production must be present, matching Kind.
type SubmitFormRequest struct {
	OrderNumber string                         `json:"order_number" binding:"required"`
	Kind        string                         `json:"kind" binding:"required,oneof=quality production"`
	Quality     *QualityMeasurementsRequest    `json:"quality,omitempty"`
	Production  *ProductionMeasurementsRequest `json:"production,omitempty"`
}

func (r SubmitFormRequest) toInput(userID uuid.UUID) productionapp.SubmitInput {
	input := productionapp.SubmitInput{
		OrderNumber: r.OrderNumber,
		Kind:        production.FormKind(r.Kind),
		UserID:      userID,
	}
	if r.Quality != nil {
		input.Quality = r.Quality.toDomain()
	}
	if r.Production != nil {
		input.Production = r.Production.toDomain()
	}
	return input
}

// ResolveFormRequest completes a conflicting submission
type ResolveFormRequest struct {
	SubmitFormRequest
	Resolution string `json:"resolution" binding:"required,oneof=update append"`
}

// SubmitFormResponse represents the submission outcome
type SubmitFormResponse struct {
	Status         string `json:"status"`
	OrderID        string `json:"order_id"`
	FormID         string `json:"form_id,omitempty"`
	ExistingFormID string `json:"existing_form_id,omitempty"`
}

func newSubmitFormResponse(result *productionapp.SubmitResult) SubmitFormResponse {
	response := SubmitFormResponse{
		Status:  string(result.Status),
		OrderID: result.OrderID.String(),
	}
	if result.FormID != uuid.Nil {
		response.FormID = result.FormID.String()
	}
	if result.ExistingFormID != uuid.Nil {
		response.ExistingFormID = result.ExistingFormID.String()
	}
	return response
}

// Submit records a filled form against an order. When a form of the same
// kind already exists the submission is left unapplied and the response
// reports a conflict for the caller to resolve.
func (h *FormsHandler) Submit(c *gin.Context) {
	var req SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.submissionService.Submit(c.Request.Context(), req.toInput(userID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if result.Status == productionapp.StatusCreated {
		h.Created(c, newSubmitFormResponse(result))
		return
	}
	h.Success(c, newSubmitFormResponse(result))
}

// Resolve completes a conflicting submission with the caller's chosen
// resolution, overwriting the latest form or appending a new one
func (h *FormsHandler) Resolve(c *gin.Context) {
	var req ResolveFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.submissionService.Resolve(c.Request.Context(), productionapp.ResolveInput{
		SubmitInput: req.toInput(userID),
		Resolution:  productionapp.Resolution(req.Resolution),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if result.Status == productionapp.StatusCreated {
		h.Created(c, newSubmitFormResponse(result))
		return
	}
	h.Success(c, newSubmitFormResponse(result))
}

// RegisterRoutes registers form routes on the router group
func (h *FormsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	forms := rg.Group("/forms")
	forms.POST("/submit", h.Submit)
	forms.POST("/resolve", h.Resolve)
}
