package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"betx.backend/internal/domain/entities"
	"betx.backend/internal/infrastructure/models"
	"betx.backend/pkg/utils"
)

// TransactionRepository implements the admin adjustment ledger
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create appends a ledger record
func (r *TransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = utils.GenerateUUIDv7()
	}

	m := &models.Transaction{
		ID:        tx.ID,
		UserID:    tx.UserID,
		AdminID:   tx.AdminID,
		Amount:    tx.Amount,
		Type:      string(tx.Type),
		Status:    tx.Status,
		Note:      tx.Note,
		CreatedAt: tx.CreatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	tx.CreatedAt = m.CreatedAt
	return nil
}

// ListByUser returns the newest ledger records targeting userID
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Transaction, error) {
	var rows []models.Transaction
	err := GetDB(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Transaction, 0, len(rows))
	for i := range rows {
		m := rows[i]
		items = append(items, &entities.Transaction{
			ID:        m.ID,
			UserID:    m.UserID,
			AdminID:   m.AdminID,
			Amount:    m.Amount,
			Type:      entities.AdjustmentType(m.Type),
			Status:    m.Status,
			Note:      m.Note,
			CreatedAt: m.CreatedAt,
		})
	}
	return items, nil
}
