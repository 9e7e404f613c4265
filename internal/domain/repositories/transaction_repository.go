package repositories

import (
	"context"

	"github.com/google/uuid"

	"betx.backend/internal/domain/entities"
)

// TransactionRepository defines the admin adjustment ledger
type TransactionRepository interface {
	Create(ctx context.Context, tx *entities.Transaction) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Transaction, error)
}
