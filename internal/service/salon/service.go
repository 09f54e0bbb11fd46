package salon

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	blacklistRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/blacklist"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	closedDayRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/closedday"
	"github.com/m04kA/SMC-SalonService/internal/service/salon/models"
)

// Service сервис справочников и настроек салона:
// каталог, чёрный список, нерабочие дни, активность мастеров
type Service struct {
	catalogRepo   CatalogRepository
	blacklistRepo BlacklistRepository
	closedDayRepo ClosedDayRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса салона
func NewService(
	catalogRepo CatalogRepository,
	blacklistRepo BlacklistRepository,
	closedDayRepo ClosedDayRepository,
	logger Logger,
) *Service {
	return &Service{
		catalogRepo:   catalogRepo,
		blacklistRepo: blacklistRepo,
		closedDayRepo: closedDayRepo,
		logger:        logger,
	}
}

// GetCatalog возвращает каталог для начальной загрузки мастера записи:
// услуги, активные мастера и пары способностей одним ответом
func (s *Service) GetCatalog(ctx context.Context) (*models.CatalogResponse, error) {
	s.logger.Info("GetCatalog: fetching catalog")

	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		s.logger.Error("GetCatalog: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: GetCatalog - repository error: %v", ErrInternal, err)
	}

	specialists, err := s.catalogRepo.ListActiveSpecialists(ctx)
	if err != nil {
		s.logger.Error("GetCatalog: failed to list specialists: %v", err)
		return nil, fmt.Errorf("%w: GetCatalog - repository error: %v", ErrInternal, err)
	}

	capabilities, err := s.catalogRepo.ListCapabilities(ctx)
	if err != nil {
		s.logger.Error("GetCatalog: failed to list capabilities: %v", err)
		return nil, fmt.Errorf("%w: GetCatalog - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCatalog: fetched %d services, %d specialists, %d capabilities",
		len(services), len(specialists), len(capabilities))

	return models.FromDomainCatalog(services, specialists, capabilities), nil
}

// SetSpecialistActive включает или отключает мастера для новых записей
// Существующие записи отключённого мастера не трогаются
func (s *Service) SetSpecialistActive(ctx context.Context, id int64, req *models.SetSpecialistActiveRequest) error {
	s.logger.Info("SetSpecialistActive: specialist id=%d, active=%v", id, req.IsActive)

	if err := s.catalogRepo.SetSpecialistActive(ctx, id, req.IsActive); err != nil {
		if errors.Is(err, catalogRepo.ErrSpecialistNotFound) {
			s.logger.Warn("SetSpecialistActive: specialist id=%d not found", id)
			return ErrSpecialistNotFound
		}
		s.logger.Error("SetSpecialistActive: repository error for specialist id=%d: %v", id, err)
		return fmt.Errorf("%w: SetSpecialistActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetSpecialistActive: successfully updated specialist id=%d", id)
	return nil
}

// ListBlacklist возвращает все записи чёрного списка
func (s *Service) ListBlacklist(ctx context.Context) (*models.BlacklistResponse, error) {
	s.logger.Info("ListBlacklist: fetching blacklist")

	entries, err := s.blacklistRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListBlacklist: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlacklist - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBlacklist: fetched %d entries", len(entries))
	return models.FromDomainBlacklist(entries), nil
}

// AddBlacklistEntry добавляет телефон в чёрный список
// Телефон нормализуется той же функцией, что и при создании записи,
// поэтому проверка при допуске — точное совпадение строк
func (s *Service) AddBlacklistEntry(ctx context.Context, req *models.AddBlacklistEntryRequest) (*models.BlacklistEntryResponse, error) {
	s.logger.Info("AddBlacklistEntry: adding phone to blacklist")

	phone := domain.NormalizePhone(req.Phone)
	if !domain.PhoneHasDigits(phone) {
		s.logger.Warn("AddBlacklistEntry: phone has no digits after normalization")
		return nil, fmt.Errorf("%w: phone must contain digits", ErrInvalidInput)
	}

	entry := &domain.BlacklistEntry{
		Name:  strings.TrimSpace(req.Name),
		Phone: phone,
	}

	saved, err := s.blacklistRepo.Add(ctx, entry)
	if err != nil {
		if errors.Is(err, blacklistRepo.ErrEntryExists) {
			s.logger.Warn("AddBlacklistEntry: phone already blacklisted")
			return nil, ErrBlacklistEntryExists
		}
		s.logger.Error("AddBlacklistEntry: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddBlacklistEntry - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddBlacklistEntry: added entry id=%d", saved.ID)
	return models.FromDomainBlacklistEntry(saved), nil
}

// RemoveBlacklistEntry удаляет запись чёрного списка
func (s *Service) RemoveBlacklistEntry(ctx context.Context, id int64) error {
	s.logger.Info("RemoveBlacklistEntry: removing entry id=%d", id)

	if err := s.blacklistRepo.Remove(ctx, id); err != nil {
		if errors.Is(err, blacklistRepo.ErrEntryNotFound) {
			s.logger.Warn("RemoveBlacklistEntry: entry id=%d not found", id)
			return ErrBlacklistEntryNotFound
		}
		s.logger.Error("RemoveBlacklistEntry: repository error for entry id=%d: %v", id, err)
		return fmt.Errorf("%w: RemoveBlacklistEntry - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveBlacklistEntry: removed entry id=%d", id)
	return nil
}

// ListClosedDays возвращает все нерабочие дни
func (s *Service) ListClosedDays(ctx context.Context) (*models.ClosedDaysResponse, error) {
	s.logger.Info("ListClosedDays: fetching closed days")

	days, err := s.closedDayRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListClosedDays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListClosedDays - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListClosedDays: fetched %d closed days", len(days))
	return models.FromDomainClosedDays(days), nil
}

// AddClosedDay отмечает дату нерабочим днём
// День с такой отметкой полностью недоступен для записи у всех мастеров
func (s *Service) AddClosedDay(ctx context.Context, req *models.AddClosedDayRequest) (*models.ClosedDayResponse, error) {
	s.logger.Info("AddClosedDay: adding closed day %s", req.Date)

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("AddClosedDay: invalid date format: %s", req.Date)
		return nil, fmt.Errorf("%w: date must be in format %s", ErrInvalidInput, domain.DateFormat)
	}

	day := &domain.ClosedDay{
		Date:   date,
		Reason: strings.TrimSpace(req.Reason),
	}

	saved, err := s.closedDayRepo.Add(ctx, day)
	if err != nil {
		if errors.Is(err, closedDayRepo.ErrClosedDayExists) {
			s.logger.Warn("AddClosedDay: date %s already marked as closed", req.Date)
			return nil, ErrClosedDayExists
		}
		s.logger.Error("AddClosedDay: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddClosedDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddClosedDay: added closed day id=%d", saved.ID)
	return models.FromDomainClosedDay(saved), nil
}

// RemoveClosedDay удаляет отметку нерабочего дня
func (s *Service) RemoveClosedDay(ctx context.Context, id int64) error {
	s.logger.Info("RemoveClosedDay: removing closed day id=%d", id)

	if err := s.closedDayRepo.Remove(ctx, id); err != nil {
		if errors.Is(err, closedDayRepo.ErrClosedDayNotFound) {
			s.logger.Warn("RemoveClosedDay: closed day id=%d not found", id)
			return ErrClosedDayNotFound
		}
		s.logger.Error("RemoveClosedDay: repository error for closed day id=%d: %v", id, err)
		return fmt.Errorf("%w: RemoveClosedDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveClosedDay: removed closed day id=%d", id)
	return nil
}
