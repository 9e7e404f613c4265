package repositories

import (
	"context"
)

// UnitOfWork runs a group of repository calls atomically.
// Repositories called with the ctx passed to fn share the same transaction.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
