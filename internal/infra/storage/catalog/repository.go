package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий справочников: услуги, мастера и их способности
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListServices получает все услуги в порядке идентификаторов
func (r *Repository) ListServices(ctx context.Context) ([]domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "title", "duration_minutes", "price").
		From("services").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		var svc domain.Service
		if err := rows.Scan(&svc.ID, &svc.Title, &svc.DurationMinutes, &svc.Price); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// ListActiveSpecialists получает активных мастеров в порядке идентификаторов
// Порядок важен: группировщик использует его как детерминированный tie-break
func (r *Repository) ListActiveSpecialists(ctx context.Context) ([]domain.Specialist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "role", "is_active").
		From("specialists").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveSpecialists - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveSpecialists - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSpecialists(rows)
}

// GetSpecialist получает мастера по ID (включая неактивных)
func (r *Repository) GetSpecialist(ctx context.Context, id int64) (*domain.Specialist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "role", "is_active").
		From("specialists").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialist - build select query: %v", ErrBuildQuery, err)
	}

	var spec domain.Specialist
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&spec.ID, &spec.Name, &spec.Role, &spec.IsActive)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSpecialistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialist - scan specialist: %v", ErrScanRow, err)
	}

	return &spec, nil
}

// ListCapabilities получает все пары (мастер, услуга)
func (r *Repository) ListCapabilities(ctx context.Context) ([]domain.Capability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("specialist_id", "service_id").
		From("specialist_services").
		OrderBy("specialist_id ASC, service_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCapabilities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCapabilities - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	capabilities := make([]domain.Capability, 0)
	for rows.Next() {
		var c domain.Capability
		if err := rows.Scan(&c.SpecialistID, &c.ServiceID); err != nil {
			return nil, fmt.Errorf("%w: ListCapabilities - scan row: %v", ErrScanRow, err)
		}
		capabilities = append(capabilities, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCapabilities - rows error: %v", ErrScanRow, err)
	}

	return capabilities, nil
}

// SetSpecialistActive включает или выключает мастера
// Неактивный мастер не участвует в новых записях; существующие записи не трогаем
func (r *Repository) SetSpecialistActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("specialists").
		Set("is_active", active).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetSpecialistActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetSpecialistActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetSpecialistActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpecialistNotFound
	}

	return nil
}

func scanSpecialists(rows *sql.Rows) ([]domain.Specialist, error) {
	specialists := make([]domain.Specialist, 0)

	for rows.Next() {
		var spec domain.Specialist
		if err := rows.Scan(&spec.ID, &spec.Name, &spec.Role, &spec.IsActive); err != nil {
			return nil, fmt.Errorf("%w: scanSpecialists - scan row: %v", ErrScanRow, err)
		}
		specialists = append(specialists, spec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSpecialists - rows error: %v", ErrScanRow, err)
	}

	return specialists, nil
}
