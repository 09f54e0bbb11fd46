package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListBlockingBySpecialistAndDay получает pending/approved записи мастера на день
	ListBlockingBySpecialistAndDay(ctx context.Context, specialistID int64, day time.Time) ([]*domain.Appointment, error)
}

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	GetSpecialist(ctx context.Context, id int64) (*domain.Specialist, error)
}

// ClosedDayRepository интерфейс репозитория нерабочих дней
type ClosedDayRepository interface {
	IsClosed(ctx context.Context, date time.Time) (bool, error)
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
