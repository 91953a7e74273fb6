package production

import (
	"strings"
	"time"

	"github.com/hermes/backend/internal/domain/shared"
)

// FormKind distinguishes the two measurement categories recorded per order
type FormKind string

const (
	FormKindQuality    FormKind = "quality"
	FormKindProduction FormKind = "production"
)

// IsValid reports whether the kind is one of the known values
func (k FormKind) IsValid() bool {
	return k == FormKindQuality || k == FormKindProduction
}

// ProductionOrder represents a production batch identified by a unique
// order number. Orders are created lazily on the first form submission
// that references an unseen order number, and are never deleted.
type ProductionOrder struct {
	shared.BaseAggregateRoot
	OrderNumber  string
	InProduction bool
	InQuality    bool
}

// NewProductionOrder creates a new order with both form flags unset
func NewProductionOrder(orderNumber string) (*ProductionOrder, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return nil, shared.NewValidationError("order_number", "cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewValidationError("order_number", "cannot exceed 50 characters")
	}

	return &ProductionOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
	}, nil
}

// MarkHasForm records that at least one form of the given kind exists.
// Flags only ever transition false to true; they are never reset, even
// when a later submission overwrites the latest form.
func (o *ProductionOrder) MarkHasForm(kind FormKind) {
	switch kind {
	case FormKindQuality:
		if o.InQuality {
			return
		}
		o.InQuality = true
	case FormKindProduction:
		if o.InProduction {
			return
		}
		o.InProduction = true
	default:
		return
	}
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// HasForm reports whether a form of the given kind has ever been recorded
func (o *ProductionOrder) HasForm(kind FormKind) bool {
	switch kind {
	case FormKindQuality:
		return o.InQuality
	case FormKindProduction:
		return o.InProduction
	}
	return false
}
