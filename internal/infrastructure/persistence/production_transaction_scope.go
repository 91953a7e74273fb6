package persistence

import (
	"context"

	appprod "github.com/hermes/backend/internal/application/production"
	"github.com/hermes/backend/internal/domain/production"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appprod.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to the production
// repositories scoped to one transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// OrderRepo returns the order repository scoped to the current transaction.
func (r *gormTransactionalRepositories) OrderRepo() production.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

// QualityFormRepo returns the quality form repository scoped to the current transaction.
func (r *gormTransactionalRepositories) QualityFormRepo() production.QualityFormRepository {
	return NewGormQualityFormRepository(r.tx)
}

// ProductionFormRepo returns the production form repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ProductionFormRepo() production.ProductionFormRepository {
	return NewGormProductionFormRepository(r.tx)
}

var _ appprod.TransactionScope = (*GormTransactionScope)(nil)
var _ appprod.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
