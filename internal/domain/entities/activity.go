package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ActivityType is the kind of an activity log entry
type ActivityType string

const (
	ActivityLogin      ActivityType = "login"
	ActivityBet        ActivityType = "bet"
	ActivityDeposit    ActivityType = "deposit"
	ActivityWithdrawal ActivityType = "withdrawal"
)

// Valid reports whether t is one of the known activity types
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityLogin, ActivityBet, ActivityDeposit, ActivityWithdrawal:
		return true
	}
	return false
}

const (
	DefaultActivityLimit = 10
	MaxActivityLimit     = 100
)

// NormalizeActivityLimit maps non-positive limits to the default and caps large ones
func NormalizeActivityLimit(limit int) int {
	if limit <= 0 {
		return DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		return MaxActivityLimit
	}
	return limit
}

// Activity is an append-only log entry
type Activity struct {
	ID       uuid.UUID        `json:"id"`
	UserID   uuid.UUID        `json:"userId"`
	Type     ActivityType     `json:"type"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Game     string           `json:"game,omitempty"`
	Outcome  string           `json:"outcome,omitempty"`
	Method   string           `json:"method,omitempty"`
	Status   string           `json:"status,omitempty"`
	Device   string           `json:"device,omitempty"`
	Location string           `json:"location,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ActivityDetails holds the optional attributes of an activity
type ActivityDetails struct {
	Amount   *decimal.Decimal
	Game     string
	Outcome  string
	Method   string
	Status   string
	Device   string
	Location string
}

// NewActivity builds an activity entry for userID
func NewActivity(userID uuid.UUID, activityType ActivityType, details ActivityDetails) *Activity {
	return &Activity{
		UserID:   userID,
		Type:     activityType,
		Amount:   details.Amount,
		Game:     details.Game,
		Outcome:  details.Outcome,
		Method:   details.Method,
		Status:   details.Status,
		Device:   details.Device,
		Location: details.Location,
	}
}
