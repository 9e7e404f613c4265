package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
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
	);`)
}

func createActivityTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE activities (
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
	);`)
}

func createStatsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE stats (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		total_bets INTEGER NOT NULL DEFAULT 0,
		wins INTEGER NOT NULL DEFAULT 0,
		losses INTEGER NOT NULL DEFAULT 0,
		win_rate TEXT NOT NULL DEFAULT '0%',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		admin_id TEXT NOT NULL,
		amount TEXT NOT NULL,
		type TEXT NOT NULL,
		status TEXT NOT NULL,
		note TEXT,
		created_at DATETIME
	);`)
}
