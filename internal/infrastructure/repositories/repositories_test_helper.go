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
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createWalletTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE wallets (
		id TEXT PRIMARY KEY,
		address TEXT NOT NULL UNIQUE,
		private_key TEXT NOT NULL,
		wallet_name TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		wallet_id TEXT NOT NULL,
		tx_hash TEXT,
		from_address TEXT NOT NULL,
		to_address TEXT NOT NULL,
		amount DECIMAL(18,8) NOT NULL,
		gas_used DECIMAL(18,8),
		status TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createManagerVersionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE wallet_manager (
		id INTEGER PRIMARY KEY,
		version TEXT,
		updated_at DATETIME
	);`)
}
