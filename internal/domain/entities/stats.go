package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ZeroWinRate is reported before any bet is settled
const ZeroWinRate = "0%"

// Stats aggregates a user's bet results
type Stats struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	TotalBets int64     `json:"totalBets"`
	Wins      int64     `json:"wins"`
	Losses    int64     `json:"losses"`
	WinRate   string    `json:"winRate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewStats returns the zero-valued aggregate for a user
func NewStats(userID uuid.UUID) *Stats {
	return &Stats{UserID: userID, WinRate: ZeroWinRate}
}

// RecordOutcome counts one settled bet and refreshes the win rate
func (s *Stats) RecordOutcome(won bool) {
	s.TotalBets++
	if won {
		s.Wins++
	} else {
		s.Losses++
	}
	s.WinRate = FormatWinRate(s.Wins, s.TotalBets)
}

// FormatWinRate renders wins/total as a percentage with two decimals, e.g. "33.33%"
func FormatWinRate(wins, total int64) string {
	if total <= 0 {
		return ZeroWinRate
	}
	rate := decimal.NewFromInt(wins).Mul(decimal.NewFromInt(100)).DivRound(decimal.NewFromInt(total), 2)
	return rate.StringFixed(2) + "%"
}
