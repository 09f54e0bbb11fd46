package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
)

// Коды Postgres, при которых сериализуемую транзакцию имеет смысл повторить
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// maxSerializableRetries максимум повторов сериализуемой транзакции
const maxSerializableRetries = 3

// ErrTxFailed возвращается, когда транзакция не выполнилась
var ErrTxFailed = errors.New("simpletxmanager: transaction failed")

// TransactionManager управляет транзакциями напрямую поверх *sql.DB
// Используется, когда метрики отключены; API и семантика повторов
// совпадают с pkg/txmanager
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает новый transaction manager
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoReadOnly выполняет fn в транзакции только для чтения
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции
// При ошибке сериализации (40001) или дедлоке (40P01) повторяет
// транзакцию целиком, до maxSerializableRetries раз
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var lastErr error
	for attempt := 0; attempt < maxSerializableRetries; attempt++ {
		lastErr = m.run(ctx, opts, fn)
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("%w: serializable retries exhausted: %v", ErrTxFailed, lastErr)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTxFailed, err)
	}

	txCtx := dbmetrics.WithTx(ctx, plainTx{tx})

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("%w: rollback after %v: %v", ErrTxFailed, err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		// Причина остаётся в цепочке: конфликт сериализации под SERIALIZABLE
		// чаще всего всплывает именно на коммите, isRetryable должен видеть код
		return fmt.Errorf("%w: commit: %w", ErrTxFailed, err)
	}

	return nil
}

// isRetryable проверяет, что ошибка — конфликт сериализации или дедлок
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == pgSerializationFailure || string(pqErr.Code) == pgDeadlockDetected
}

// plainTx адаптирует *sql.Tx под dbmetrics.TxExecutor без записи метрик
type plainTx struct {
	*sql.Tx
}
