package identity

import (
	"context"

	"github.com/hermes/backend/internal/domain/identity"
	"github.com/hermes/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// DefaultAccount describes one seeded account
type DefaultAccount struct {
	Username string
	Password string
	Role     identity.Role
}

// DefaultAccounts returns the three accounts seeded on first start, one
// per role. Operators change these passwords after the first login.
func DefaultAccounts() []DefaultAccount {
	return []DefaultAccount{
		{Username: "admin", Password: "admin123", Role: identity.RoleAdmin},
		{Username: "supervisor", Password: "super123", Role: identity.RoleSupervisor},
		{Username: "operator", Password: "oper123", Role: identity.RoleOperator},
	}
}

// BootstrapService seeds the default accounts exactly once
type BootstrapService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewBootstrapService creates a new bootstrap service
func NewBootstrapService(userRepo identity.UserRepository, logger *zap.Logger) *BootstrapService {
	return &BootstrapService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// SeedDefaultUsers creates the default accounts when the user table is
// empty. It is a no-op when any user already exists, so it is safe to run
// on every startup.
func (s *BootstrapService) SeedDefaultUsers(ctx context.Context) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return shared.NewStorageError(err)
	}
	if count > 0 {
		s.logger.Debug("Users already present, skipping bootstrap", zap.Int64("count", count))
		return nil
	}

	for _, account := range DefaultAccounts() {
		user, err := identity.NewUser(account.Username, account.Password, account.Role)
		if err != nil {
			return err
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return shared.NewStorageError(err)
		}
		s.logger.Info("Seeded default account",
			zap.String("username", account.Username),
			zap.String("role", string(account.Role)),
		)
	}

	return nil
}
