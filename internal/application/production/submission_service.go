package production

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/hermes/backend/internal/domain/production"
	"github.com/hermes/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SubmissionService implements the order-scoped form submission protocol.
//
// Submit never silently overwrites: when a form of the same kind already
// exists for the order it returns a conflict outcome and writes nothing.
// The caller then completes the flow through Resolve with the same payload
// and an explicit update-or-append choice. Both calls run their writes in
// a single transaction.
type SubmissionService struct {
	txScope TransactionScope
	logger  *zap.Logger
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(txScope TransactionScope, logger *zap.Logger) *SubmissionService {
	return &SubmissionService{
		txScope: txScope,
		logger:  logger,
	}
}

// Submit validates the payload, finds or creates the order and either
// records the first form of its kind or reports a conflict.
func (s *SubmissionService) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	var result *SubmitResult
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := s.findOrCreateOrder(ctx, repos, input.OrderNumber)
		if err != nil {
			return err
		}

		existingID, err := s.findLatestFormID(ctx, repos, input.Kind, order.ID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		if existingID != uuid.Nil {
			// Decision point, not an error: nothing is written and the
			// order row created above (if any) is kept, matching the
			// original flow where the order exists before the prompt.
			result = &SubmitResult{
				Status:         StatusConflict,
				OrderID:        order.ID,
				ExistingFormID: existingID,
			}
			return nil
		}

		formID, err := s.insertForm(ctx, repos, order, input)
		if err != nil {
			return err
		}

		result = &SubmitResult{
			Status:  StatusCreated,
			OrderID: order.ID,
			FormID:  formID,
		}
		return nil
	})
	if err != nil {
		return nil, s.asDomainError(err)
	}

	s.logger.Info("Form submission processed",
		zap.String("order_number", input.OrderNumber),
		zap.String("kind", string(input.Kind)),
		zap.String("status", string(result.Status)),
	)
	return result, nil
}

// Resolve completes a conflicting submission. The latest form is re-derived
// from (order_number, kind) so a stale conflict id can never select the
// wrong row.
func (s *SubmissionService) Resolve(ctx context.Context, input ResolveInput) (*SubmitResult, error) {
	if err := s.validateInput(input.SubmitInput); err != nil {
		return nil, err
	}
	if !input.Resolution.IsValid() {
		return nil, shared.NewValidationError("resolution", "must be update or append")
	}

	var result *SubmitResult
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.OrderRepo().FindByOrderNumber(ctx, input.OrderNumber)
		if err != nil {
			return err
		}

		switch input.Resolution {
		case ResolutionUpdate:
			formID, err := s.overwriteLatestForm(ctx, repos, order, input.SubmitInput)
			if err != nil {
				return err
			}
			result = &SubmitResult{Status: StatusUpdated, OrderID: order.ID, FormID: formID}
		case ResolutionAppend:
			formID, err := s.insertForm(ctx, repos, order, input.SubmitInput)
			if err != nil {
				return err
			}
			result = &SubmitResult{Status: StatusCreated, OrderID: order.ID, FormID: formID}
		}
		return nil
	})
	if err != nil {
		return nil, s.asDomainError(err)
	}

	s.logger.Info("Form conflict resolved",
		zap.String("order_number", input.OrderNumber),
		zap.String("kind", string(input.Kind)),
		zap.String("resolution", string(input.Resolution)),
	)
	return result, nil
}

func (s *SubmissionService) validateInput(input SubmitInput) error {
	if strings.TrimSpace(input.OrderNumber) == "" {
		return shared.NewValidationError("order_number", "cannot be empty")
	}
	if !input.Kind.IsValid() {
		return shared.NewValidationError("kind", "must be quality or production")
	}
	if input.UserID == uuid.Nil {
		return shared.NewValidationError("user_id", "cannot be empty")
	}

	switch input.Kind {
	case production.FormKindQuality:
		if input.Quality == nil {
			return shared.NewValidationError("quality", "payload is required for quality submissions")
		}
		return input.Quality.Validate()
	case production.FormKindProduction:
		if input.Production == nil {
			return shared.NewValidationError("production", "payload is required for production submissions")
		}
		return input.Production.Validate()
	}
	return nil
}

func (s *SubmissionService) findOrCreateOrder(ctx context.Context, repos TransactionalRepositories, orderNumber string) (*production.ProductionOrder, error) {
	order, err := repos.OrderRepo().FindByOrderNumber(ctx, orderNumber)
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	order, err = production.NewProductionOrder(orderNumber)
	if err != nil {
		return nil, err
	}
	if err := repos.OrderRepo().Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *SubmissionService) findLatestFormID(ctx context.Context, repos TransactionalRepositories, kind production.FormKind, orderID uuid.UUID) (uuid.UUID, error) {
	switch kind {
	case production.FormKindQuality:
		form, err := repos.QualityFormRepo().FindLatestByOrder(ctx, orderID)
		if err != nil {
			return uuid.Nil, err
		}
		return form.ID, nil
	default:
		form, err := repos.ProductionFormRepo().FindLatestByOrder(ctx, orderID)
		if err != nil {
			return uuid.Nil, err
		}
		return form.ID, nil
	}
}

// insertForm appends a form row and raises the matching order flag.
// The flag only ever transitions false to true.
func (s *SubmissionService) insertForm(ctx context.Context, repos TransactionalRepositories, order *production.ProductionOrder, input SubmitInput) (uuid.UUID, error) {
	var formID uuid.UUID

	switch input.Kind {
	case production.FormKindQuality:
		form, err := production.NewQualityForm(order.ID, input.UserID, *input.Quality)
		if err != nil {
			return uuid.Nil, err
		}
		if err := repos.QualityFormRepo().Create(ctx, form); err != nil {
			return uuid.Nil, err
		}
		formID = form.ID
	default:
		form, err := production.NewProductionForm(order.ID, input.UserID, *input.Production)
		if err != nil {
			return uuid.Nil, err
		}
		if err := repos.ProductionFormRepo().Create(ctx, form); err != nil {
			return uuid.Nil, err
		}
		formID = form.ID
	}

	if !order.HasForm(input.Kind) {
		order.MarkHasForm(input.Kind)
		if err := repos.OrderRepo().Update(ctx, order); err != nil {
			return uuid.Nil, err
		}
	}
	return formID, nil
}

func (s *SubmissionService) overwriteLatestForm(ctx context.Context, repos TransactionalRepositories, order *production.ProductionOrder, input SubmitInput) (uuid.UUID, error) {
	switch input.Kind {
	case production.FormKindQuality:
		form, err := repos.QualityFormRepo().FindLatestByOrder(ctx, order.ID)
		if err != nil {
			return uuid.Nil, err
		}
		if err := form.Overwrite(input.UserID, *input.Quality); err != nil {
			return uuid.Nil, err
		}
		if err := repos.QualityFormRepo().Update(ctx, form); err != nil {
			return uuid.Nil, err
		}
		return form.ID, nil
	default:
		form, err := repos.ProductionFormRepo().FindLatestByOrder(ctx, order.ID)
		if err != nil {
			return uuid.Nil, err
		}
		if err := form.Overwrite(input.UserID, *input.Production); err != nil {
			return uuid.Nil, err
		}
		if err := repos.ProductionFormRepo().Update(ctx, form); err != nil {
			return uuid.Nil, err
		}
		return form.ID, nil
	}
}

// asDomainError keeps DomainError values intact and wraps raw persistence
// failures so the caller sees the operation as not applied.
func (s *SubmissionService) asDomainError(err error) error {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	s.logger.Error("Submission transaction failed", zap.Error(err))
	return shared.NewStorageError(err)
}
