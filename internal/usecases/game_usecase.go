package usecases

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/google/uuid"

	"betx.backend/internal/domain/entities"
	domainerrors "betx.backend/internal/domain/errors"
	"betx.backend/internal/domain/repositories"
	"betx.backend/pkg/metrics"
)

// DiceRoller returns a face in 1..6
type DiceRoller func() int

func defaultRoller() int {
	return rand.IntN(6) + 1
}

// GameUsecase settles dice rounds against the player's balance
type GameUsecase struct {
	userRepo     repositories.UserRepository
	activityRepo repositories.ActivityRepository
	activities   *ActivityUsecase
	uow          repositories.UnitOfWork
	metrics      *metrics.Metrics
	roll         DiceRoller
	maxAttempts  int
}

// NewGameUsecase creates a new game usecase. A nil roller uses math/rand.
func NewGameUsecase(
	userRepo repositories.UserRepository,
	activityRepo repositories.ActivityRepository,
	activities *ActivityUsecase,
	uow repositories.UnitOfWork,
	m *metrics.Metrics,
	roller DiceRoller,
) *GameUsecase {
	if roller == nil {
		roller = defaultRoller
	}
	return &GameUsecase{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		activities:   activities,
		uow:          uow,
		metrics:      m,
		roll:         roller,
		maxAttempts:  DefaultMaxAttempts,
	}
}

// PlayDice bets amount on high (4-6) or low (1-3) at even money
func (u *GameUsecase) PlayDice(ctx context.Context, userID uuid.UUID, input *entities.DiceInput) (*entities.DiceResult, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerrors.Validation("amount must be a positive number")
	}
	guess, err := entities.ParseDiceGuess(input.Guess)
	if err != nil {
		return nil, err
	}

	roll := u.roll()
	if roll < 1 || roll > 6 {
		return nil, domainerrors.InternalError(errors.New("dice roll out of range"))
	}
	won := entities.DiceWins(guess, roll)
	outcome := entities.OutcomeLoss
	if won {
		outcome = entities.OutcomeWin
	}

	result := &entities.DiceResult{Roll: roll, Outcome: outcome}
	err = retryOnConflict(ctx, u.maxAttempts, func() error {
		return u.uow.Do(ctx, func(txCtx context.Context) error {
			user, err := u.userRepo.GetByID(txCtx, userID)
			if err != nil {
				if errors.Is(err, domainerrors.ErrNotFound) {
					return domainerrors.NotFound("User not found")
				}
				return err
			}
			if user.Balance.LessThan(input.Amount) {
				return domainerrors.InsufficientFunds("Insufficient balance")
			}

			balance := entities.SettleBet(user.Balance, input.Amount, won)
			if err := u.userRepo.UpdateBalance(txCtx, user.ID, balance, user.Version); err != nil {
				return err
			}

			amount := input.Amount
			if err := u.activityRepo.Create(txCtx, entities.NewActivity(user.ID, entities.ActivityBet, entities.ActivityDetails{
				Amount:  &amount,
				Game:    entities.GameDice,
				Outcome: outcome,
				Status:  "completed",
			})); err != nil {
				return err
			}

			stats, err := u.activities.RecordBetOutcome(txCtx, user.ID, won)
			if err != nil {
				return err
			}

			result.Balance = balance
			result.Stats = stats
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	u.metrics.DiceRound(outcome)
	return result, nil
}
