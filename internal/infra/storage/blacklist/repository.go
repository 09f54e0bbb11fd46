package blacklist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

// Repository репозиторий чёрного списка телефонов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория чёрного списка
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает все записи чёрного списка, новые первыми
func (r *Repository) List(ctx context.Context) ([]domain.BlacklistEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "phone", "created_at").
		From("blacklist").
		OrderBy("created_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.BlacklistEntry, 0)
	for rows.Next() {
		var entry domain.BlacklistEntry
		var createdAt sql.NullTime
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Phone, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		entry.CreatedAt = createdAt.Time
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// ExistsByPhone проверяет, есть ли нормализованный телефон в чёрном списке
// Сравнение точное: нормализация выполняется до вызова
func (r *Repository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("blacklist").
		Where(squirrel.Eq{"phone": phone}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByPhone - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByPhone - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// Add добавляет телефон в чёрный список
func (r *Repository) Add(ctx context.Context, entry *domain.BlacklistEntry) (*domain.BlacklistEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blacklist").
		Columns("name", "phone").
		Values(entry.Name, entry.Phone).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Add - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrEntryExists
		}
		return nil, fmt.Errorf("%w: Add - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time

	return entry, nil
}

// Remove удаляет запись чёрного списка по ID
func (r *Repository) Remove(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blacklist").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Remove - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}
