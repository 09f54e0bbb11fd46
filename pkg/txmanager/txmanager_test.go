package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
)

type fakeTx struct {
	commitErr error
	commits   int
	rollbacks int
}

func (t *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) Commit() error {
	t.commits++
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rollbacks++
	return nil
}

// fakeBeginner выдаёт по транзакции на попытку; ошибка коммита
// настраивается отдельно для каждой попытки
type fakeBeginner struct {
	commitErrs []error
	begins     int
	txs        []*fakeTx
}

func (b *fakeBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	var commitErr error
	if b.begins < len(b.commitErrs) {
		commitErr = b.commitErrs[b.begins]
	}
	b.begins++
	tx := &fakeTx{commitErr: commitErr}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func serializationFailure() error {
	return &pq.Error{Code: pgSerializationFailure}
}

func TestDoSerializable(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, beginner.begins)
	assert.Equal(t, 1, beginner.txs[0].commits)
}

func TestDoSerializable_CommitSerializationFailureRetried(t *testing.T) {
	// 40001 на каждом коммите: транзакция повторяется до исчерпания попыток
	beginner := &fakeBeginner{commitErrs: []error{
		serializationFailure(), serializationFailure(), serializationFailure(),
	}}
	m := NewTransactionManager(beginner)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.ErrorIs(t, err, ErrTxFailed)
	assert.Equal(t, maxSerializableRetries, calls)
	assert.Equal(t, maxSerializableRetries, beginner.begins)
}

func TestDoSerializable_CommitFailureRecovered(t *testing.T) {
	// Первый коммит падает с 40001, второй проходит
	beginner := &fakeBeginner{commitErrs: []error{serializationFailure(), nil}}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, beginner.begins)
	assert.Equal(t, 1, beginner.txs[1].commits)
}

func TestDoSerializable_DeadlockOnCommitRetried(t *testing.T) {
	beginner := &fakeBeginner{commitErrs: []error{
		&pq.Error{Code: pgDeadlockDetected}, nil,
	}}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, beginner.begins)
}

func TestDoSerializable_RetryableFnErrorRetried(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return serializationFailure()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, beginner.txs[0].rollbacks)
	assert.Equal(t, 1, beginner.txs[1].commits)
}

func TestDoSerializable_NonRetryableErrorNotRetried(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	boom := errors.New("boom")
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, beginner.begins)
	assert.Equal(t, 1, beginner.txs[0].rollbacks)
	assert.Zero(t, beginner.txs[0].commits)
}
