package group_services

import (
	"context"

	groupServices "github.com/m04kA/SMC-SalonService/internal/usecase/group_services"
)

type GroupServicesUseCase interface {
	Execute(ctx context.Context, req *groupServices.Request) (*groupServices.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
