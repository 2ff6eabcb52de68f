package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/bizlens/bizlens/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUOW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

// readSetting reads a settings row back through a fresh transaction.
func readSetting(uow *db.SQLiteUnitOfWork, key string) (string, bool) {
	var val string
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		row := tx.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key)
		if err := row.Scan(&val); err != nil {
			return nil // not found
		}
		found = true
		return nil
	})
	return val, found
}

func insertSetting(ctx context.Context, tx db.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, '2025-01-01T00:00:00Z')`, key, value)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUOW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertSetting(ctx, tx, "currency", "RM")
	})
	require.NoError(t, err)

	val, found := readSetting(uow, "currency")
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, "RM", val)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUOW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertSetting(ctx, tx, "theme", "dark"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := readSetting(uow, "theme")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUOW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertSetting(ctx, tx, "model", "llama3.2")
			panic("boom")
		})
	})

	_, found := readSetting(uow, "model")
	assert.False(t, found, "row should not exist after panic rollback")
}
