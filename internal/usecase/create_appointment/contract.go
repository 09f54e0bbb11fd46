package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error)
	CountCreatedSince(ctx context.Context, phone string, since time.Time) (int, error)
	ListBlockingByPhoneSpecialistWithin(ctx context.Context, phone string, specialistID int64, from, to time.Time) ([]*domain.Appointment, error)
}

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	GetSpecialist(ctx context.Context, id int64) (*domain.Specialist, error)
}

// BlacklistRepository интерфейс репозитория чёрного списка
type BlacklistRepository interface {
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}

// ClosedDayRepository интерфейс репозитория нерабочих дней
type ClosedDayRepository interface {
	IsClosed(ctx context.Context, date time.Time) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// CodeGenerator интерфейс генератора кодов записи (для тестирования)
type CodeGenerator interface {
	Generate() (string, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
