package simpletxmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serializationFailure() error {
	return &pq.Error{Code: pgSerializationFailure}
}

func TestDoSerializable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	m := NewTransactionManager(db)
	calls := 0
	err = m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_CommitSerializationFailureRetried(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// 40001 на каждом коммите: транзакция повторяется до исчерпания попыток
	for i := 0; i < maxSerializableRetries; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(serializationFailure())
	}

	m := NewTransactionManager(db)
	calls := 0
	err = m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.ErrorIs(t, err, ErrTxFailed)
	assert.Equal(t, maxSerializableRetries, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_CommitFailureRecovered(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(serializationFailure())
	mock.ExpectBegin()
	mock.ExpectCommit()

	m := NewTransactionManager(db)
	err = m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_NonRetryableErrorNotRetried(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	m := NewTransactionManager(db)
	boom := errors.New("boom")
	err = m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
