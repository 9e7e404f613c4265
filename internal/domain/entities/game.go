package entities

import (
	"github.com/shopspring/decimal"

	domainerrors "betx.backend/internal/domain/errors"
)

// DiceGuess is the side a player bets on
type DiceGuess string

const (
	GuessHigh DiceGuess = "high"
	GuessLow  DiceGuess = "low"
)

const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
	GameDice    = "dice"
)

// DiceInput is the request body for a dice round
type DiceInput struct {
	Amount decimal.Decimal `json:"amount"`
	Guess  string          `json:"guess"`
}

// DiceResult is returned after a round is settled
type DiceResult struct {
	Roll    int             `json:"roll"`
	Outcome string          `json:"outcome"`
	Balance decimal.Decimal `json:"balance"`
	Stats   *Stats          `json:"stats"`
}

// ParseDiceGuess validates the raw guess
func ParseDiceGuess(raw string) (DiceGuess, error) {
	switch DiceGuess(raw) {
	case GuessHigh, GuessLow:
		return DiceGuess(raw), nil
	}
	return "", domainerrors.Validation("guess must be high or low")
}

// DiceWins reports whether guess wins for a roll in 1..6. High wins on 4-6, low on 1-3.
func DiceWins(guess DiceGuess, roll int) bool {
	if guess == GuessHigh {
		return roll >= 4
	}
	return roll <= 3
}

// SettleBet returns the balance after an even-money bet
func SettleBet(balance, amount decimal.Decimal, won bool) decimal.Decimal {
	if won {
		return balance.Add(amount)
	}
	return balance.Sub(amount)
}
