package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Mock implementations

type fakeAppointmentRepo struct {
	rows   []*domain.Appointment // видимые записи: существовавшие до отправки + вставленные
	nextID int64

	countSince int
	countErr   error

	createErr     error // постоянная ошибка Create
	createErrOnce error // ошибка только первого Create (сценарий гонки)
	// Строка конкурента, появляющаяся после гонки: повторный прогон её видит
	committedAfterRace *domain.Appointment

	createCalls int
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	f.createCalls++
	if f.createErrOnce != nil {
		err := f.createErrOnce
		f.createErrOnce = nil
		if f.committedAfterRace != nil {
			f.rows = append(f.rows, f.committedAfterRace)
			f.committedAfterRace = nil
		}
		return nil, err
	}
	if f.createErr != nil {
		return nil, f.createErr
	}

	f.nextID++
	saved := *apt
	saved.ID = f.nextID
	saved.CreatedAt = time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	f.rows = append(f.rows, &saved)
	return &saved, nil
}

func (f *fakeAppointmentRepo) CountCreatedSince(ctx context.Context, phone string, since time.Time) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.countSince, nil
}

func (f *fakeAppointmentRepo) ListBlockingByPhoneSpecialistWithin(ctx context.Context, phone string, specialistID int64, from, to time.Time) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, apt := range f.rows {
		if apt.CustomerPhone != phone || apt.SpecialistID != specialistID {
			continue
		}
		if !apt.IsBlocking() {
			continue
		}
		if apt.StartTime.Before(from) || !apt.StartTime.Before(to) {
			continue
		}
		out = append(out, apt)
	}
	return out, nil
}

type fakeCatalogRepo struct {
	services    []domain.Service
	specialists map[int64]*domain.Specialist
}

func (f *fakeCatalogRepo) ListServices(ctx context.Context) ([]domain.Service, error) {
	return f.services, nil
}

func (f *fakeCatalogRepo) GetSpecialist(ctx context.Context, id int64) (*domain.Specialist, error) {
	sp, ok := f.specialists[id]
	if !ok {
		return nil, catalogRepo.ErrSpecialistNotFound
	}
	return sp, nil
}

type fakeBlacklistRepo struct {
	blocked bool
	err     error
}

func (f *fakeBlacklistRepo) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.blocked, nil
}

type fakeClosedDayRepo struct {
	closedDates map[string]bool
}

func (f *fakeClosedDayRepo) IsClosed(ctx context.Context, date time.Time) (bool, error) {
	return f.closedDates[date.Format(domain.DateFormat)], nil
}

// fakeTxManager выполняет функцию напрямую, без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeCodeGenerator struct {
	n   int
	err error
}

func (f *fakeCodeGenerator) Generate() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.n++
	return fmt.Sprintf("CODE%06d", f.n), nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Test fixtures

var (
	testNow = time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC) // понедельник
	// Среда той же недели
	testDate = time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)
)

func testCatalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		services: []domain.Service{
			{ID: 1, Title: "Saç Kesimi", DurationMinutes: 45, Price: 250},
			{ID: 2, Title: "Saç Boyama", DurationMinutes: 90, Price: 500},
			{ID: 3, Title: "Manikür", DurationMinutes: 30, Price: 150},
		},
		specialists: map[int64]*domain.Specialist{
			1: {ID: 1, Name: "Ayşe Yılmaz", Role: "Saç Uzmanı", IsActive: true},
			3: {ID: 3, Name: "Zeynep Kaya", Role: "Tırnak Bakım Uzmanı", IsActive: true},
			4: {ID: 4, Name: "Elif Şahin", Role: "Masaj Terapisti", IsActive: false},
		},
	}
}

type testEnv struct {
	uc        *UseCase
	apts      *fakeAppointmentRepo
	catalog   *fakeCatalogRepo
	blacklist *fakeBlacklistRepo
	closed    *fakeClosedDayRepo
	tx        *fakeTxManager
}

func newTestEnv() *testEnv {
	env := &testEnv{
		apts:      &fakeAppointmentRepo{},
		catalog:   testCatalog(),
		blacklist: &fakeBlacklistRepo{},
		closed:    &fakeClosedDayRepo{closedDates: map[string]bool{}},
		tx:        &fakeTxManager{},
	}
	env.uc = NewUseCase(
		env.apts,
		env.catalog,
		env.blacklist,
		env.closed,
		env.tx,
		&fakeCodeGenerator{},
		3,
		nopLogger{},
	)
	env.uc.timeProvider = &fakeTimeProvider{now: testNow}
	return env
}

func validRequest() *Request {
	return &Request{
		CustomerName:  "  Ali Veli  ",
		CustomerPhone: "+90 (532) 123-45-67",
		Groups: []GroupInput{
			{
				ServiceIDs:   []int64{1, 2},
				SpecialistID: 1,
				Date:         testDate,
				Time:         types.TimeString("10:00"),
			},
		},
	}
}

func TestExecute_Success(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)

	apt := resp.Appointments[0]
	assert.Equal(t, "Saç Kesimi, Saç Boyama", apt.ServiceTitle)
	assert.Equal(t, int64(1), apt.SpecialistID)
	assert.Equal(t, "Ayşe Yılmaz", apt.SpecialistName)
	assert.Equal(t, types.TimeString("10:00"), apt.AppointmentTime)
	assert.Equal(t, 135, apt.DurationMinutes)
	assert.Equal(t, 750.0, apt.TotalPrice)
	assert.Equal(t, string(domain.StatusApproved), apt.Status)
	assert.Equal(t, "CODE000001", apt.BookingCode)

	// Имя обрезано, телефон нормализован
	require.Len(t, env.apts.rows, 1)
	assert.Equal(t, "Ali Veli", env.apts.rows[0].CustomerName)
	assert.Equal(t, "90 (532) 1234567", env.apts.rows[0].CustomerPhone)
}

func TestExecute_Blocked(t *testing.T) {
	env := newTestEnv()
	env.blacklist.blocked = true

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBlocked)
	assert.Zero(t, env.apts.createCalls, "no appointment must be created for blocked phone")
}

func TestExecute_RateLimit(t *testing.T) {
	env := newTestEnv()
	env.apts.countSince = 3 // уже на пороге

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Zero(t, env.apts.createCalls)
}

func TestExecute_RateLimitBelowThreshold(t *testing.T) {
	env := newTestEnv()
	env.apts.countSince = 2 // одна свободная попытка осталась

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)
}

func TestExecute_DuplicateWeekGoesPending(t *testing.T) {
	env := newTestEnv()
	// Approved-запись того же телефона к тому же мастеру на этой же неделе
	env.apts.rows = []*domain.Appointment{{
		ID:            100,
		CustomerPhone: "90 (532) 1234567",
		SpecialistID:  1,
		StartTime:     time.Date(2026, 3, 20, 15, 0, 0, 0, time.UTC),
		Status:        domain.StatusApproved,
	}}

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, string(domain.StatusPending), resp.Appointments[0].Status)
}

func TestExecute_DifferentSpecialistSameWeekApproved(t *testing.T) {
	env := newTestEnv()
	// Запись на этой неделе есть, но к другому мастеру: статус не понижается
	env.apts.rows = []*domain.Appointment{{
		ID:            100,
		CustomerPhone: "90 (532) 1234567",
		SpecialistID:  3,
		StartTime:     time.Date(2026, 3, 20, 15, 0, 0, 0, time.UTC),
		Status:        domain.StatusApproved,
	}}

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusApproved), resp.Appointments[0].Status)
}

func TestExecute_PreviousWeekDoesNotAffectStatus(t *testing.T) {
	env := newTestEnv()
	env.apts.rows = []*domain.Appointment{{
		ID:            100,
		CustomerPhone: "90 (532) 1234567",
		SpecialistID:  1,
		StartTime:     time.Date(2026, 3, 11, 15, 0, 0, 0, time.UTC),
		Status:        domain.StatusApproved,
	}}

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusApproved), resp.Appointments[0].Status)
}

func TestExecute_SecondGroupSameSpecialistPending(t *testing.T) {
	env := newTestEnv()

	req := validRequest()
	req.Groups = append(req.Groups, GroupInput{
		ServiceIDs:   []int64{3},
		SpecialistID: 1,
		Date:         time.Date(2026, 3, 19, 0, 0, 0, 0, time.UTC),
		Time:         types.TimeString("12:00"),
	})

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 2)

	// Вторая группа видит вставку первой: тот же мастер, та же неделя
	assert.Equal(t, string(domain.StatusApproved), resp.Appointments[0].Status)
	assert.Equal(t, string(domain.StatusPending), resp.Appointments[1].Status)
	assert.NotEqual(t, resp.Appointments[0].BookingCode, resp.Appointments[1].BookingCode)
}

func TestExecute_RaceRetriesOnce(t *testing.T) {
	env := newTestEnv()
	// Первая попытка натыкается на конкурентную approved-запись;
	// повторный прогон видит её и понижает статус группы до pending
	env.apts.createErrOnce = appointmentRepo.ErrDuplicateWeekApproved
	env.apts.committedAfterRace = &domain.Appointment{
		ID:            200,
		CustomerPhone: "90 (532) 1234567",
		SpecialistID:  1,
		StartTime:     time.Date(2026, 3, 17, 9, 0, 0, 0, time.UTC),
		Status:        domain.StatusApproved,
	}

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, string(domain.StatusPending), resp.Appointments[0].Status)
	assert.Equal(t, 2, env.tx.calls)
}

func TestExecute_RaceRetryExhausted(t *testing.T) {
	env := newTestEnv()
	env.apts.createErr = appointmentRepo.ErrBookingCodeTaken

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, appointmentRepo.ErrBookingCodeTaken)
	assert.Equal(t, 2, env.tx.calls)
}

func TestExecute_PersistenceFailure(t *testing.T) {
	env := newTestEnv()
	env.apts.createErr = errors.New("disk full")

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPersistenceFailure)
	assert.Equal(t, 1, env.tx.calls, "non-race errors must not be retried")
}

func TestExecute_SalonClosed(t *testing.T) {
	env := newTestEnv()
	env.closed.closedDates[testDate.Format(domain.DateFormat)] = true

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSalonClosed)
	assert.Zero(t, env.tx.calls, "closed day must be rejected before the transaction")
}

func TestExecute_ServiceNotFound(t *testing.T) {
	env := newTestEnv()

	req := validRequest()
	req.Groups[0].ServiceIDs = []int64{999}

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_SpecialistNotFound(t *testing.T) {
	env := newTestEnv()

	req := validRequest()
	req.Groups[0].SpecialistID = 999

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSpecialistNotFound)
}

func TestExecute_SpecialistInactive(t *testing.T) {
	env := newTestEnv()

	req := validRequest()
	req.Groups[0].SpecialistID = 4

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSpecialistInactive)
}

func TestExecute_Validation(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "short name",
			mutate:  func(req *Request) { req.CustomerName = "  Al  " },
			wantErr: ErrInvalidName,
		},
		{
			name:    "phone without digits",
			mutate:  func(req *Request) { req.CustomerPhone = "---" },
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "no groups",
			mutate:  func(req *Request) { req.Groups = nil },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "group without services",
			mutate:  func(req *Request) { req.Groups[0].ServiceIDs = nil },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "group without time",
			mutate:  func(req *Request) { req.Groups[0].Time = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "group with malformed time",
			mutate:  func(req *Request) { req.Groups[0].Time = "25:99" },
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
