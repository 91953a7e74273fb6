package production

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository defines the persistence interface for production orders
type OrderRepository interface {
	Create(ctx context.Context, order *ProductionOrder) error
	Update(ctx context.Context, order *ProductionOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*ProductionOrder, error)
	// FindByOrderNumber performs a case-sensitive exact match.
	// Returns shared.ErrNotFound when no such order exists.
	FindByOrderNumber(ctx context.Context, orderNumber string) (*ProductionOrder, error)
}

// QualityFormRepository defines the persistence interface for quality forms
type QualityFormRepository interface {
	Create(ctx context.Context, form *QualityForm) error
	Update(ctx context.Context, form *QualityForm) error
	FindByID(ctx context.Context, id uuid.UUID) (*QualityForm, error)
	// FindLatestByOrder returns the form with the greatest created_at for
	// the order, or shared.ErrNotFound when the order has none.
	FindLatestByOrder(ctx context.Context, orderID uuid.UUID) (*QualityForm, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*QualityForm, error)
	CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error)
}

// ProductionFormRepository defines the persistence interface for production forms
type ProductionFormRepository interface {
	Create(ctx context.Context, form *ProductionForm) error
	Update(ctx context.Context, form *ProductionForm) error
	FindByID(ctx context.Context, id uuid.UUID) (*ProductionForm, error)
	FindLatestByOrder(ctx context.Context, orderID uuid.UUID) (*ProductionForm, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*ProductionForm, error)
	CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error)
}
