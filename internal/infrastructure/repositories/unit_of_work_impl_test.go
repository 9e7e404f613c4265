package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"betx.backend/internal/domain/entities"
)

func TestUnitOfWork_DoCommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	createStatsTable(t, db)
	u := &UnitOfWorkImpl{db: db}
	users := NewUserRepository(db)
	stats := NewStatsRepository(db)

	// commit path
	err := u.Do(context.Background(), func(ctx context.Context) error {
		user := &entities.User{Mobile: "1234567890", PasswordHash: "h"}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return stats.Create(ctx, entities.NewStats(user.ID))
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Table("users").Count(&count).Error)
	require.Equal(t, int64(1), count)
	require.NoError(t, db.Table("stats").Count(&count).Error)
	require.Equal(t, int64(1), count)

	// rollback path
	err = u.Do(context.Background(), func(ctx context.Context) error {
		if err := users.Create(ctx, &entities.User{Mobile: "0987654321", PasswordHash: "h"}); err != nil {
			return err
		}
		return errors.New("force rollback")
	})
	require.EqualError(t, err, "force rollback")

	require.NoError(t, db.Table("users").Count(&count).Error)
	require.Equal(t, int64(1), count, "second insert must be rolled back")
}

func TestUnitOfWork_NestedDoReusesTransaction(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	u := &UnitOfWorkImpl{db: db}
	users := NewUserRepository(db)

	err := u.Do(context.Background(), func(outer context.Context) error {
		outerTx := GetDB(outer, db)
		if err := u.Do(outer, func(inner context.Context) error {
			require.Same(t, outerTx, GetDB(inner, db))
			return users.Create(inner, &entities.User{Mobile: "1111111111", PasswordHash: "h"})
		}); err != nil {
			return err
		}
		return errors.New("abort outer")
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Table("users").Count(&count).Error)
	require.Equal(t, int64(0), count)
}

func TestUnitOfWork_GetDB(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}

	require.NotNil(t, u.GetDB(context.Background()))

	tx := db.Begin()
	txCtx := context.WithValue(context.Background(), txKey, tx)
	require.Same(t, tx, u.GetDB(txCtx))
	tx.Rollback()
}

func TestUnitOfWork_DoBeginFailure(t *testing.T) {
	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	u := NewUnitOfWork(db)
	err = u.Do(context.Background(), func(ctx context.Context) error { return nil })
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to begin transaction")
}
