package appointment

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

// Имена уникальных индексов, по которым различаем конфликты вставки
const (
	uqBookingCode       = "uq_appointments_booking_code"
	uqApprovedPhoneWeek = "uq_appointments_phone_specialist_week"
)

// pgUniqueViolation код ошибки Postgres при нарушении уникальности
const pgUniqueViolation = "23505"

var appointmentColumns = []string{
	"id",
	"customer_name",
	"customer_phone",
	"service_title",
	"specialist_id",
	"specialist_name",
	"start_time",
	"appointment_time",
	"duration_minutes",
	"status",
	"booking_code",
	"created_at",
}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте передана активная транзакция, использует её
//
// Вставка опирается на два уникальных индекса:
// - uq_appointments_booking_code: коллизия случайного кода записи,
//   вызывающий код генерирует новый код и повторяет вставку;
// - uq_appointments_phone_specialist_week (частичный, status='approved'):
//   конкурентная approved-запись того же телефона к тому же мастеру на той же
//   неделе, вызывающий код понижает статус до pending и повторяет вставку
func (r *Repository) Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"customer_name",
			"customer_phone",
			"service_title",
			"specialist_id",
			"specialist_name",
			"start_time",
			"appointment_time",
			"duration_minutes",
			"status",
			"booking_code",
		).
		Values(
			apt.CustomerName,
			apt.CustomerPhone,
			apt.ServiceTitle,
			apt.SpecialistID,
			apt.SpecialistName,
			apt.StartTime,
			apt.AppointmentTime,
			apt.DurationMinutes,
			apt.Status,
			apt.BookingCode,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&apt.ID, &createdAt)

	if err != nil {
		if conflictErr := classifyConflict(err); conflictErr != nil {
			return nil, conflictErr
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	apt.CreatedAt = createdAt.Time

	return apt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByBookingCode получает запись по коду записи
// Код приводится к каноническому виду на уровне вызывающего кода
func (r *Repository) GetByBookingCode(ctx context.Context, code string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"booking_code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingCode - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByBookingCode")
}

// ListWithFilter получает записи с гибкой фильтрацией (админ-панель)
// Поддерживает фильтрацию по мастеру, периоду start_time, телефону и статусам
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments")

	if filter.SpecialistID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"specialist_id": *filter.SpecialistID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_time": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.EndDate})
	}
	if filter.Phone != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_phone": *filter.Phone})
	}
	if len(filter.StatusIn) > 0 {
		statuses := make([]string, len(filter.StatusIn))
		for i, s := range filter.StatusIn {
			statuses[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statuses})
	}

	selectBuilder = selectBuilder.OrderBy("start_time DESC, id DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListBlockingBySpecialistAndDay получает блокирующие записи мастера на день
// Только pending и approved: отклонённые записи слоты не занимают
// Используется движком доступности слотов, сортировка по времени начала
func (r *Repository) ListBlockingBySpecialistAndDay(ctx context.Context, specialistID int64, day time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"specialist_id": specialistID}).
		Where(squirrel.GtOrEq{"start_time": dayStart}).
		Where(squirrel.Lt{"start_time": dayEnd}).
		Where(squirrel.Eq{"status": blockingStatusStrings()}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockingBySpecialistAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockingBySpecialistAndDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// CountCreatedSince считает записи телефона, созданные после since
// Лимит считается по created_at, а не по времени визита
func (r *Repository) CountCreatedSince(ctx context.Context, phone string, since time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"customer_phone": phone}).
		Where(squirrel.GtOrEq{"created_at": since}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountCreatedSince - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountCreatedSince - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ListBlockingByPhoneSpecialistWithin получает блокирующие записи телефона
// к мастеру в интервале [from, to) — проверка дубля недели
// Внутри транзакции выборка блокируется через FOR UPDATE, чтобы два
// конкурентных допуска одного телефона не прошли проверку одновременно
func (r *Repository) ListBlockingByPhoneSpecialistWithin(ctx context.Context, phone string, specialistID int64, from, to time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"customer_phone": phone}).
		Where(squirrel.Eq{"specialist_id": specialistID}).
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Eq{"status": blockingStatusStrings()}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockingByPhoneSpecialistWithin - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockingByPhoneSpecialistWithin - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if conflictErr := classifyConflict(err); conflictErr != nil {
			return conflictErr
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Delete удаляет запись (физическое удаление, только из админ-панели)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// scanOne сканирует одну запись из QueryRowContext
func (r *Repository) scanOne(row *sql.Row, op string) (*domain.Appointment, error) {
	var apt domain.Appointment
	var createdAt sql.NullTime

	err := row.Scan(
		&apt.ID,
		&apt.CustomerName,
		&apt.CustomerPhone,
		&apt.ServiceTitle,
		&apt.SpecialistID,
		&apt.SpecialistName,
		&apt.StartTime,
		&apt.AppointmentTime,
		&apt.DurationMinutes,
		&apt.Status,
		&apt.BookingCode,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan appointment: %v", ErrScanRow, op, err)
	}

	apt.CreatedAt = createdAt.Time

	return &apt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var apt domain.Appointment
		var createdAt sql.NullTime

		err := rows.Scan(
			&apt.ID,
			&apt.CustomerName,
			&apt.CustomerPhone,
			&apt.ServiceTitle,
			&apt.SpecialistID,
			&apt.SpecialistName,
			&apt.StartTime,
			&apt.AppointmentTime,
			&apt.DurationMinutes,
			&apt.Status,
			&apt.BookingCode,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		apt.CreatedAt = createdAt.Time

		appointments = append(appointments, &apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// classifyConflict распознает нарушения уникальных индексов
// Возвращает nil, если ошибка не является конфликтом уникальности
func classifyConflict(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != pgUniqueViolation {
		return nil
	}

	switch pqErr.Constraint {
	case uqBookingCode:
		return ErrBookingCodeTaken
	case uqApprovedPhoneWeek:
		return ErrDuplicateWeekApproved
	default:
		return nil
	}
}

// blockingStatusStrings возвращает блокирующие статусы строками для SQL
func blockingStatusStrings() []string {
	statuses := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		statuses[i] = string(s)
	}
	return statuses
}
