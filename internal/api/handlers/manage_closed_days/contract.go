package manage_closed_days

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/salon/models"
)

type SalonService interface {
	ListClosedDays(ctx context.Context) (*models.ClosedDaysResponse, error)
	AddClosedDay(ctx context.Context, req *models.AddClosedDayRequest) (*models.ClosedDayResponse, error)
	RemoveClosedDay(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
