//go:build unit

package db_test

import (
	"context"
	"errors"
	"testing"

	"pro-video-services/internal/infra/db"
	"pro-video-services/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx records commit and rollback calls; the embedded interface is never invoked.
type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx       *fakeTx
	beginErr error
	begins   int
}

func (f *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	f.begins++
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	f.tx = &fakeTx{}
	return f.tx, nil
}

func TestRunInTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success: commits and returns the result", func(t *testing.T) {
		b := &fakeBeginner{}
		got, err := db.RunInTx(ctx, b, func(db.DBTX) (int, error) { return 42, nil })
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.True(t, b.tx.committed)
		assert.False(t, b.tx.rolledBack)
	})

	t.Run("error: fn failure rolls back", func(t *testing.T) {
		b := &fakeBeginner{}
		boom := errors.New("boom")
		_, err := db.RunInTx(ctx, b, func(db.DBTX) (int, error) { return 0, boom })
		assert.ErrorIs(t, err, boom)
		assert.False(t, b.tx.committed)
		assert.True(t, b.tx.rolledBack)
	})

	t.Run("error: begin failure is marked", func(t *testing.T) {
		b := &fakeBeginner{beginErr: errors.New("pool closed")}
		_, err := db.RunInTx(ctx, b, func(db.DBTX) (int, error) { return 0, nil })
		require.Error(t, err)
		assert.True(t, errs.Is(err, db.ErrTransactionBegin))
	})
}

func TestRunInTxWithRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("retries serialization failures", func(t *testing.T) {
		b := &fakeBeginner{}
		calls := 0
		got, err := db.RunInTxWithRetry(ctx, b, 3, func(db.DBTX) (string, error) {
			calls++
			if calls < 2 {
				return "", &pgconn.PgError{Code: "40001"}
			}
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 2, b.begins)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		b := &fakeBeginner{}
		_, err := db.RunInTxWithRetry(ctx, b, 3, func(db.DBTX) (string, error) {
			return "", &pgconn.PgError{Code: "23505"}
		})
		require.Error(t, err)
		assert.Equal(t, 1, b.begins)
	})
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, db.IsRetryable(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, db.IsRetryable(errors.New("plain")))
}
