package group_services

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	ListActiveSpecialists(ctx context.Context) ([]domain.Specialist, error)
	ListCapabilities(ctx context.Context) ([]domain.Capability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
