package salon

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	ListActiveSpecialists(ctx context.Context) ([]domain.Specialist, error)
	ListCapabilities(ctx context.Context) ([]domain.Capability, error)
	SetSpecialistActive(ctx context.Context, id int64, active bool) error
}

// BlacklistRepository интерфейс репозитория чёрного списка
type BlacklistRepository interface {
	List(ctx context.Context) ([]domain.BlacklistEntry, error)
	Add(ctx context.Context, entry *domain.BlacklistEntry) (*domain.BlacklistEntry, error)
	Remove(ctx context.Context, id int64) error
}

// ClosedDayRepository интерфейс репозитория нерабочих дней
type ClosedDayRepository interface {
	List(ctx context.Context) ([]domain.ClosedDay, error)
	Add(ctx context.Context, day *domain.ClosedDay) (*domain.ClosedDay, error)
	Remove(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
