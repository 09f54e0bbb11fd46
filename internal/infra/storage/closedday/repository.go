package closedday

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

// Repository репозиторий нерабочих дней салона
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория нерабочих дней
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает все нерабочие дни по возрастанию даты
func (r *Repository) List(ctx context.Context) ([]domain.ClosedDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "closed_date", "reason", "created_at").
		From("closed_days").
		OrderBy("closed_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]domain.ClosedDay, 0)
	for rows.Next() {
		var day domain.ClosedDay
		var createdAt sql.NullTime
		if err := rows.Scan(&day.ID, &day.Date, &day.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		day.CreatedAt = createdAt.Time
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

// IsClosed проверяет, отмечена ли календарная дата нерабочей
func (r *Repository) IsClosed(ctx context.Context, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	query, args, err := psqlbuilder.Select("1").
		From("closed_days").
		Where(squirrel.Eq{"closed_date": dateOnly}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsClosed - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsClosed - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// Add отмечает дату нерабочей
func (r *Repository) Add(ctx context.Context, day *domain.ClosedDay) (*domain.ClosedDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dateOnly := time.Date(day.Date.Year(), day.Date.Month(), day.Date.Day(), 0, 0, 0, 0, time.UTC)

	query, args, err := psqlbuilder.Insert("closed_days").
		Columns("closed_date", "reason").
		Values(dateOnly, day.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Add - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&day.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrClosedDayExists
		}
		return nil, fmt.Errorf("%w: Add - execute insert: %v", ErrExecQuery, err)
	}

	day.Date = dateOnly
	day.CreatedAt = createdAt.Time

	return day, nil
}

// Remove удаляет нерабочий день по ID
func (r *Repository) Remove(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("closed_days").
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
		return ErrClosedDayNotFound
	}

	return nil
}
