package manage_blacklist

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/salon/models"
)

type SalonService interface {
	ListBlacklist(ctx context.Context) (*models.BlacklistResponse, error)
	AddBlacklistEntry(ctx context.Context, req *models.AddBlacklistEntryRequest) (*models.BlacklistEntryResponse, error)
	RemoveBlacklistEntry(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
