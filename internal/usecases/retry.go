package usecases

import (
	"context"
	"errors"

	domainerrors "betx.backend/internal/domain/errors"
)

// DefaultMaxAttempts bounds how often a balance write is retried after losing a version race
const DefaultMaxAttempts = 3

// retryOnConflict runs fn until it succeeds, fails with something other than
// ErrConcurrentUpdate, or attempts are exhausted.
func retryOnConflict(ctx context.Context, attempts int, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = fn()
		if !errors.Is(err, domainerrors.ErrConcurrentUpdate) {
			return err
		}
	}
	return domainerrors.ConcurrentUpdate("concurrent balance update, please retry")
}
