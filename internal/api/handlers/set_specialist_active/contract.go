package set_specialist_active

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/salon/models"
)

type SalonService interface {
	SetSpecialistActive(ctx context.Context, id int64, req *models.SetSpecialistActiveRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
