package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	return NewRepository(db), mock, func() { db.Close() }
}

func sampleAppointment() *domain.Appointment {
	return &domain.Appointment{
		CustomerName:    "Ali Veli",
		CustomerPhone:   "90 (532) 1234567",
		ServiceTitle:    "Saç Kesimi",
		SpecialistID:    1,
		SpecialistName:  "Ayşe Yılmaz",
		StartTime:       time.Date(2026, 3, 18, 10, 0, 0, 0, time.UTC),
		AppointmentTime: types.TimeString("10:00"),
		DurationMinutes: 45,
		Status:          domain.StatusApproved,
		BookingCode:     "ABCDEFGHJK",
	}
}

func appointmentRows(apt *domain.Appointment) *sqlmock.Rows {
	return sqlmock.NewRows(appointmentColumns).AddRow(
		apt.ID,
		apt.CustomerName,
		apt.CustomerPhone,
		apt.ServiceTitle,
		apt.SpecialistID,
		apt.SpecialistName,
		apt.StartTime,
		string(apt.AppointmentTime),
		apt.DurationMinutes,
		string(apt.Status),
		apt.BookingCode,
		apt.CreatedAt,
	)
}

func TestCreate(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	createdAt := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

	saved, err := repo.Create(context.Background(), sampleAppointment())
	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ID)
	assert.Equal(t, createdAt, saved.CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_BookingCodeConflict(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnError(&pq.Error{Code: pgUniqueViolation, Constraint: uqBookingCode})

	_, err := repo.Create(context.Background(), sampleAppointment())
	assert.ErrorIs(t, err, ErrBookingCodeTaken)
}

func TestCreate_PhoneWeekConflict(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnError(&pq.Error{Code: pgUniqueViolation, Constraint: uqApprovedPhoneWeek})

	_, err := repo.Create(context.Background(), sampleAppointment())
	assert.ErrorIs(t, err, ErrDuplicateWeekApproved)
}

func TestCreate_UnknownConstraintConflict(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	// Нарушение неизвестного индекса не маскируется под гонку
	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnError(&pq.Error{Code: pgUniqueViolation, Constraint: "some_other_index"})

	_, err := repo.Create(context.Background(), sampleAppointment())
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NotErrorIs(t, err, ErrBookingCodeTaken)
	assert.NotErrorIs(t, err, ErrDuplicateWeekApproved)
}

func TestGetByID(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	apt := sampleAppointment()
	apt.ID = 7
	apt.CreatedAt = time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .* FROM appointments WHERE id = ").
		WithArgs(int64(7)).
		WillReturnRows(appointmentRows(apt))

	got, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, apt.CustomerName, got.CustomerName)
	assert.Equal(t, apt.AppointmentTime, got.AppointmentTime)
	assert.Equal(t, apt.Status, got.Status)
	assert.Equal(t, apt.CreatedAt, got.CreatedAt)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectQuery("SELECT .* FROM appointments WHERE id = ").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetByBookingCode(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	apt := sampleAppointment()
	apt.ID = 3

	mock.ExpectQuery("SELECT .* FROM appointments WHERE booking_code = ").
		WithArgs("ABCDEFGHJK").
		WillReturnRows(appointmentRows(apt))

	got, err := repo.GetByBookingCode(context.Background(), "ABCDEFGHJK")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, "ABCDEFGHJK", got.BookingCode)
}

func TestListWithFilter(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	specialistID := int64(1)
	phone := "90 (532) 1234567"
	filter := domain.AppointmentsFilter{
		SpecialistID: &specialistID,
		Phone:        &phone,
		StatusIn:     []domain.AppointmentStatus{domain.StatusPending, domain.StatusApproved},
	}

	apt := sampleAppointment()
	apt.ID = 1
	mock.ExpectQuery("SELECT .* FROM appointments WHERE specialist_id = .* ORDER BY start_time DESC, id DESC").
		WillReturnRows(appointmentRows(apt))

	got, err := repo.ListWithFilter(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestListBlockingBySpecialistAndDay(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	day := time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)
	first := sampleAppointment()
	first.ID = 1
	second := sampleAppointment()
	second.ID = 2
	second.AppointmentTime = types.TimeString("14:00")
	second.StartTime = time.Date(2026, 3, 18, 14, 0, 0, 0, time.UTC)

	rows := appointmentRows(first).AddRow(
		second.ID, second.CustomerName, second.CustomerPhone, second.ServiceTitle,
		second.SpecialistID, second.SpecialistName, second.StartTime,
		string(second.AppointmentTime), second.DurationMinutes,
		string(second.Status), second.BookingCode, second.CreatedAt,
	)

	mock.ExpectQuery("SELECT .* FROM appointments WHERE specialist_id = .* ORDER BY start_time ASC").
		WillReturnRows(rows)

	got, err := repo.ListBlockingBySpecialistAndDay(context.Background(), 1, day)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestCountCreatedSince(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	since := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM appointments").
		WithArgs("90 (532) 1234567", since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountCreatedSince(context.Background(), "90 (532) 1234567", since)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestListBlockingByPhoneSpecialistWithin(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	from := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	// Вне транзакции выборка идёт без FOR UPDATE
	mock.ExpectQuery("SELECT .* FROM appointments WHERE customer_phone = .* ORDER BY start_time ASC$").
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	got, err := repo.ListBlockingByPhoneSpecialistWithin(context.Background(), "90 (532) 1234567", 1, from, to)
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBlockingByPhoneSpecialistWithin_ForUpdateInTx(t *testing.T) {
	repo, _, closeDB := newMock(t)
	defer closeDB()

	db, txMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	txMock.ExpectBegin()
	txMock.ExpectQuery("SELECT .* FROM appointments WHERE customer_phone = .* FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	ctx := dbmetrics.WithTx(context.Background(), tx)
	from := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	got, err := repo.ListBlockingByPhoneSpecialistWithin(ctx, "90 (532) 1234567", 1, from, from.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.NoError(t, txMock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectExec("UPDATE appointments SET status = ").
		WithArgs("rejected", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 7, domain.StatusRejected)
	assert.NoError(t, err)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectExec("UPDATE appointments SET status = ").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 404, domain.StatusApproved)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectExec("DELETE FROM appointments").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 7)
	assert.NoError(t, err)
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectExec("DELETE FROM appointments").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
