package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"betx.backend/internal/domain/entities"
	domainerrors "betx.backend/internal/domain/errors"
	"betx.backend/internal/domain/repositories"
	"betx.backend/pkg/logger"
	"betx.backend/pkg/metrics"
)

// LedgerUsecase moves balance between an admin and a user
type LedgerUsecase struct {
	userRepo     repositories.UserRepository
	txRepo       repositories.TransactionRepository
	activityRepo repositories.ActivityRepository
	uow          repositories.UnitOfWork
	metrics      *metrics.Metrics
	maxAttempts  int
}

// NewLedgerUsecase creates a new ledger usecase. m may be nil.
func NewLedgerUsecase(
	userRepo repositories.UserRepository,
	txRepo repositories.TransactionRepository,
	activityRepo repositories.ActivityRepository,
	uow repositories.UnitOfWork,
	m *metrics.Metrics,
) *LedgerUsecase {
	return &LedgerUsecase{
		userRepo:     userRepo,
		txRepo:       txRepo,
		activityRepo: activityRepo,
		uow:          uow,
		metrics:      m,
		maxAttempts:  DefaultMaxAttempts,
	}
}

// AdjustBalance deposits to or withdraws from the target user against the admin's own balance.
// Both balance writes, the Transaction and the user's activity entry commit together or not at all.
func (u *LedgerUsecase) AdjustBalance(ctx context.Context, adminID uuid.UUID, input *entities.AdjustBalanceInput) (*entities.User, error) {
	user, err := u.adjust(ctx, adminID, input)
	u.metrics.LedgerAdjustment(input.Type, ledgerResult(err))
	return user, err
}

func (u *LedgerUsecase) adjust(ctx context.Context, adminID uuid.UUID, input *entities.AdjustBalanceInput) (*entities.User, error) {
	rawUserID := strings.TrimSpace(input.UserID)
	if rawUserID == "" || input.Type == "" || input.Amount.IsZero() {
		return nil, domainerrors.Validation("userId, amount and type are required")
	}
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return nil, domainerrors.Validation("invalid userId")
	}
	adjType, err := entities.ParseAdjustmentType(input.Type)
	if err != nil {
		return nil, err
	}
	if !input.Amount.IsPositive() {
		return nil, domainerrors.Validation("amount must be a positive number")
	}
	if userID == adminID {
		return nil, domainerrors.Validation("admin cannot adjust their own balance")
	}

	var record *entities.Transaction
	err = retryOnConflict(ctx, u.maxAttempts, func() error {
		return u.uow.Do(ctx, func(txCtx context.Context) error {
			admin, err := u.userRepo.GetByID(txCtx, adminID)
			if err != nil {
				if errors.Is(err, domainerrors.ErrNotFound) {
					return domainerrors.Unauthorized("Please authenticate")
				}
				return err
			}
			if !admin.IsAdmin {
				return domainerrors.Forbidden("Admin access required")
			}

			target, err := u.userRepo.GetByID(txCtx, userID)
			if err != nil {
				if errors.Is(err, domainerrors.ErrNotFound) {
					return domainerrors.NotFound("User not found")
				}
				return err
			}

			plan, err := entities.PlanAdjustment(admin, target, input.Amount, adjType, input.Note)
			if err != nil {
				return err
			}

			if err := u.userRepo.UpdateBalance(txCtx, admin.ID, plan.AdminBalance, admin.Version); err != nil {
				return err
			}
			if err := u.userRepo.UpdateBalance(txCtx, target.ID, plan.UserBalance, target.Version); err != nil {
				return err
			}
			if err := u.txRepo.Create(txCtx, plan.Transaction); err != nil {
				return err
			}
			if err := u.activityRepo.Create(txCtx, plan.Activity); err != nil {
				return err
			}
			record = plan.Transaction
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Balance adjusted",
		zap.String("transaction_id", record.ID.String()),
		zap.String("admin_id", adminID.String()),
		zap.String("target_user_id", userID.String()),
		zap.String("type", string(adjType)),
		zap.String("amount", input.Amount.String()),
	)

	return u.userRepo.GetByID(ctx, userID)
}

func ledgerResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domainerrors.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return "invalid"
	case errors.Is(err, domainerrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, domainerrors.ErrConcurrentUpdate):
		return "conflict"
	case errors.Is(err, domainerrors.ErrForbidden), errors.Is(err, domainerrors.ErrUnauthorized):
		return "denied"
	}
	return "error"
}
