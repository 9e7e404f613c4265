package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"betx.backend/internal/domain/entities"
	"betx.backend/pkg/utils"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByMobile(ctx context.Context, mobile string) (*entities.User, error)
	// UpdateProfile writes name, mobile and email
	UpdateProfile(ctx context.Context, user *entities.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	// UpdateBalance writes balance only if the row still has expectedVersion.
	// It returns ErrConcurrentUpdate otherwise.
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal, expectedVersion int64) error
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
	GrantAdmin(ctx context.Context, id uuid.UUID, privileges []string) error
	List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.User, int64, error)
}
