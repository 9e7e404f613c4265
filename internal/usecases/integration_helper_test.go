package usecases_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"betx.backend/internal/domain/entities"
	domainRepos "betx.backend/internal/domain/repositories"
	"betx.backend/internal/infrastructure/repositories"
)

type storeEnv struct {
	db         *gorm.DB
	users      *repositories.UserRepository
	stats      *repositories.StatsRepository
	activities *repositories.ActivityRepository
	txs        *repositories.TransactionRepository
	uow        domainRepos.UnitOfWork
}

func newStoreEnv(t *testing.T) *storeEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, ddl := range []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			mobile TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL DEFAULT 'User',
			email TEXT,
			password_hash TEXT NOT NULL,
			is_admin BOOLEAN NOT NULL DEFAULT false,
			admin_privileges TEXT DEFAULT '{}',
			balance TEXT NOT NULL DEFAULT '0',
			verified BOOLEAN NOT NULL DEFAULT false,
			version INTEGER NOT NULL DEFAULT 0,
			last_login_at DATETIME,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE activities (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			type TEXT NOT NULL,
			amount TEXT,
			game TEXT,
			outcome TEXT,
			method TEXT,
			status TEXT,
			device TEXT,
			location TEXT,
			created_at DATETIME
		);`,
		`CREATE TABLE stats (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL UNIQUE,
			total_bets INTEGER NOT NULL DEFAULT 0,
			wins INTEGER NOT NULL DEFAULT 0,
			losses INTEGER NOT NULL DEFAULT 0,
			win_rate TEXT NOT NULL DEFAULT '0%',
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE transactions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			admin_id TEXT NOT NULL,
			amount TEXT NOT NULL,
			type TEXT NOT NULL,
			status TEXT NOT NULL,
			note TEXT,
			created_at DATETIME
		);`,
	} {
		require.NoError(t, db.Exec(ddl).Error)
	}

	return &storeEnv{
		db:         db,
		users:      repositories.NewUserRepository(db),
		stats:      repositories.NewStatsRepository(db),
		activities: repositories.NewActivityRepository(db),
		txs:        repositories.NewTransactionRepository(db),
		uow:        repositories.NewUnitOfWork(db),
	}
}

func (e *storeEnv) seedUser(t *testing.T, mobile string, balance string, admin bool) *entities.User {
	t.Helper()
	u := &entities.User{
		Mobile:       mobile,
		PasswordHash: "unused",
		IsAdmin:      admin,
		Balance:      decimal.RequireFromString(balance),
	}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

func (e *storeEnv) balanceOf(t *testing.T, u *entities.User) decimal.Decimal {
	t.Helper()
	got, err := e.users.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	return got.Balance
}

func (e *storeEnv) count(t *testing.T, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Table(table).Count(&n).Error)
	return n
}
