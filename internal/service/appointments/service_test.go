package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Mock implementations

type mockAppointmentRepo struct {
	apt        *domain.Appointment
	list       []*domain.Appointment
	err        error
	gotCode    string
	gotStatus  domain.AppointmentStatus
	gotFilter  domain.AppointmentsFilter
	deletedIDs []int64
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.apt, nil
}

func (m *mockAppointmentRepo) GetByBookingCode(ctx context.Context, code string) (*domain.Appointment, error) {
	m.gotCode = code
	if m.err != nil {
		return nil, m.err
	}
	return m.apt, nil
}

func (m *mockAppointmentRepo) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	m.gotFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.list, nil
}

func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	m.gotStatus = status
	return m.err
}

func (m *mockAppointmentRepo) Delete(ctx context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func sampleAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              7,
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

func TestLookup(t *testing.T) {
	repo := &mockAppointmentRepo{apt: sampleAppointment()}
	svc := NewService(repo, nopLogger{})

	// Код приводится к верхнему регистру перед поиском
	resp, err := svc.Lookup(context.Background(), "  abcdefghjk ")
	require.NoError(t, err)

	assert.Equal(t, "ABCDEFGHJK", repo.gotCode)
	assert.Equal(t, "Saç Kesimi", resp.ServiceTitle)
	assert.Equal(t, "2026-03-18", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "approved", resp.Status)
}

func TestLookup_InvalidCode(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{}, nopLogger{})

	// Слишком короткий код и символы вне алфавита отклоняются без похода в БД
	for _, code := range []string{"", "ABC", "ABCDEFGH10"} {
		_, err := svc.Lookup(context.Background(), code)
		assert.ErrorIs(t, err, ErrInvalidCode, "code %q", code)
	}
}

func TestLookup_NotFound(t *testing.T) {
	repo := &mockAppointmentRepo{err: appointmentRepo.ErrAppointmentNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Lookup(context.Background(), "ABCDEFGHJK")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_StatusFilter(t *testing.T) {
	repo := &mockAppointmentRepo{list: []*domain.Appointment{sampleAppointment()}}
	svc := NewService(repo, nopLogger{})

	status := "pending"
	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{Status: &status})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)

	require.Len(t, repo.gotFilter.StatusIn, 1)
	assert.Equal(t, domain.StatusPending, repo.gotFilter.StatusIn[0])
}

func TestList_InvalidStatus(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{}, nopLogger{})

	status := "archived"
	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{Status: &status})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus(t *testing.T) {
	apt := sampleAppointment()
	apt.Status = domain.StatusRejected
	repo := &mockAppointmentRepo{apt: apt}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "rejected"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusRejected, repo.gotStatus)
	assert.Equal(t, "rejected", resp.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := &mockAppointmentRepo{err: appointmentRepo.ErrAppointmentNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 404, &models.UpdateStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete(t *testing.T) {
	repo := &mockAppointmentRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.Equal(t, []int64{7}, repo.deletedIDs)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &mockAppointmentRepo{err: appointmentRepo.ErrAppointmentNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete_RepositoryError(t *testing.T) {
	repo := &mockAppointmentRepo{err: errors.New("db down")}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInternal)
}
