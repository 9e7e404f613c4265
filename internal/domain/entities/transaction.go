package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerrors "betx.backend/internal/domain/errors"
)

// AdjustmentType is the direction of an admin balance adjustment
type AdjustmentType string

const (
	// AdjustmentDeposit moves funds from the admin to the user
	AdjustmentDeposit AdjustmentType = "deposit"
	// AdjustmentWithdraw moves funds from the user to the admin
	AdjustmentWithdraw AdjustmentType = "withdraw"
)

// TransactionStatusCompleted is the only status a persisted adjustment can have
const TransactionStatusCompleted = "completed"

// Transaction is the append-only record of an admin balance adjustment
type Transaction struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	AdminID   uuid.UUID       `json:"adminId"`
	Amount    decimal.Decimal `json:"amount"`
	Type      AdjustmentType  `json:"type"`
	Status    string          `json:"status"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"createdAt"`
}

// AdjustBalanceInput is the admin request body
type AdjustBalanceInput struct {
	UserID string          `json:"userId"`
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"`
	Note   string          `json:"note"`
}

// AdjustmentPlan is the computed outcome of an adjustment before it is persisted
type AdjustmentPlan struct {
	AdminBalance decimal.Decimal
	UserBalance  decimal.Decimal
	Transaction  *Transaction
	Activity     *Activity
}

// ParseAdjustmentType validates the raw type string
func ParseAdjustmentType(raw string) (AdjustmentType, error) {
	switch AdjustmentType(raw) {
	case AdjustmentDeposit, AdjustmentWithdraw:
		return AdjustmentType(raw), nil
	case "":
		return "", domainerrors.Validation("type is required")
	}
	return "", domainerrors.Validation("type must be deposit or withdraw")
}

// PlanAdjustment computes the balances, ledger record and activity for moving
// amount between admin and user. It has no side effects; admin+user balance is preserved.
func PlanAdjustment(admin, user *User, amount decimal.Decimal, adjType AdjustmentType, note string) (*AdjustmentPlan, error) {
	if !amount.IsPositive() {
		return nil, domainerrors.Validation("amount must be a positive number")
	}
	if admin.ID == user.ID {
		return nil, domainerrors.Validation("admin cannot adjust their own balance")
	}

	plan := &AdjustmentPlan{}
	var activityType ActivityType

	switch adjType {
	case AdjustmentDeposit:
		if admin.Balance.LessThan(amount) {
			return nil, domainerrors.InsufficientFunds("admin has insufficient balance")
		}
		plan.AdminBalance = admin.Balance.Sub(amount)
		plan.UserBalance = user.Balance.Add(amount)
		activityType = ActivityDeposit
	case AdjustmentWithdraw:
		if user.Balance.LessThan(amount) {
			return nil, domainerrors.InsufficientFunds("user has insufficient balance")
		}
		plan.AdminBalance = admin.Balance.Add(amount)
		plan.UserBalance = user.Balance.Sub(amount)
		activityType = ActivityWithdrawal
	default:
		return nil, domainerrors.Validation("type must be deposit or withdraw")
	}

	note = strings.TrimSpace(note)
	if note == "" {
		note = "Admin " + string(adjType)
	}

	plan.Transaction = &Transaction{
		UserID:  user.ID,
		AdminID: admin.ID,
		Amount:  amount,
		Type:    adjType,
		Status:  TransactionStatusCompleted,
		Note:    note,
	}
	plan.Activity = NewActivity(user.ID, activityType, ActivityDetails{
		Amount: &amount,
		Method: "admin",
		Status: TransactionStatusCompleted,
	})
	return plan, nil
}
