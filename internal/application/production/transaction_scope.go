package production

import (
	"context"

	"github.com/hermes/backend/internal/domain/production"
)

// TransactionScope provides transactional access to the order and form
// repositories. A submission's order creation, flag transition and form
// write all run inside one Execute call, so they commit or roll back
// atomically and no order is ever left flagged without its form.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the production repositories
// within a transaction. All repositories returned share the same underlying
// database transaction.
type TransactionalRepositories interface {
	OrderRepo() production.OrderRepository
	QualityFormRepo() production.QualityFormRepository
	ProductionFormRepo() production.ProductionFormRepository
}

// NoOpTransactionScope runs the function against fixed repositories without
// a real transaction. Useful for tests.
type NoOpTransactionScope struct {
	orderRepo          production.OrderRepository
	qualityFormRepo    production.QualityFormRepository
	productionFormRepo production.ProductionFormRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(
	orderRepo production.OrderRepository,
	qualityFormRepo production.QualityFormRepository,
	productionFormRepo production.ProductionFormRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo:          orderRepo,
		qualityFormRepo:    qualityFormRepo,
		productionFormRepo: productionFormRepo,
	}
}

// Execute runs fn against the configured repositories
func (s *NoOpTransactionScope) Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// OrderRepo returns the order repository
func (s *NoOpTransactionScope) OrderRepo() production.OrderRepository {
	return s.orderRepo
}

// QualityFormRepo returns the quality form repository
func (s *NoOpTransactionScope) QualityFormRepo() production.QualityFormRepository {
	return s.qualityFormRepo
}

// ProductionFormRepo returns the production form repository
func (s *NoOpTransactionScope) ProductionFormRepo() production.ProductionFormRepository {
	return s.productionFormRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
