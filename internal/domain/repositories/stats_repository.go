package repositories

import (
	"context"

	"github.com/google/uuid"

	"betx.backend/internal/domain/entities"
)

// StatsRepository defines per-user bet statistics operations
type StatsRepository interface {
	Create(ctx context.Context, stats *entities.Stats) error
	// GetOrCreate returns the user's stats, creating the zero record on first access
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entities.Stats, error)
	Update(ctx context.Context, stats *entities.Stats) error
}
