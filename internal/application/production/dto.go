package production

import (
	"github.com/google/uuid"
	"github.com/hermes/backend/internal/domain/production"
)

// SubmitStatus describes how a submission was applied
type SubmitStatus string

const (
	// StatusCreated means a new form row was inserted
	StatusCreated SubmitStatus = "created"
	// StatusUpdated means the latest existing form was overwritten in place
	StatusUpdated SubmitStatus = "updated"
	// StatusConflict means a form of this kind already exists and nothing
	// was written; the caller must resolve via Resolve.
	StatusConflict SubmitStatus = "conflict"
)

// Resolution is the caller's choice for a conflicting submission
type Resolution string

const (
	ResolutionUpdate Resolution = "update"
	ResolutionAppend Resolution = "append"
)

// IsValid reports whether the resolution is one of the known values
func (r Resolution) IsValid() bool {
	return r == ResolutionUpdate || r == ResolutionAppend
}

// SubmitInput carries one filled form for an order. Exactly one of Quality
// and Production must be set, matching Kind.
type SubmitInput struct {
	OrderNumber string
	Kind        production.FormKind
	UserID      uuid.UUID
	Quality     *production.QualityMeasurements
	Production  *production.ProductionMeasurements
}

// ResolveInput completes a conflicting submission with the chosen resolution
type ResolveInput struct {
	SubmitInput
	Resolution Resolution
}

// SubmitResult is the outcome of a Submit or Resolve call
type SubmitResult struct {
	Status  SubmitStatus
	OrderID uuid.UUID
	// FormID is the affected form row for created/updated outcomes
	FormID uuid.UUID
	// ExistingFormID identifies the latest existing form when Status is
	// conflict, for display purposes only; Resolve re-derives the target.
	ExistingFormID uuid.UUID
}
