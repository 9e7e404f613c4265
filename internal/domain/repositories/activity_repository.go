package repositories

import (
	"context"

	"github.com/google/uuid"

	"betx.backend/internal/domain/entities"
)

// ActivityRepository defines the append-only activity log
type ActivityRepository interface {
	Create(ctx context.Context, activity *entities.Activity) error
	// ListRecent returns at most limit entries, newest first
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Activity, error)
}
