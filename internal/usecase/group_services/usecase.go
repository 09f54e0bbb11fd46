package group_services

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// UseCase use case разбиения выбранных услуг на группы по мастерам
type UseCase struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalogRepo CatalogRepository, logger Logger) *UseCase {
	return &UseCase{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Execute выполняет use case группировки услуг
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GroupServices: services=%v", req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GroupServices: validation failed: %v", err)
		return nil, err
	}

	// Пустой выбор — пустой список групп
	if len(req.ServiceIDs) == 0 {
		return &Response{Groups: []Group{}}, nil
	}

	// 2. Загружаем каталог услуг
	services, err := uc.catalogRepo.ListServices(ctx)
	if err != nil {
		uc.logger.Error("GroupServices: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	// 3. Сопоставляем выбранные ID с услугами каталога, порядок выбора сохраняем
	selected, err := resolveSelected(req.ServiceIDs, services)
	if err != nil {
		uc.logger.Warn("GroupServices: unknown service in selection %v", req.ServiceIDs)
		return nil, err
	}

	// 4. Загружаем активных мастеров: порядок каталога — детерминированный tie-break
	specialists, err := uc.catalogRepo.ListActiveSpecialists(ctx)
	if err != nil {
		uc.logger.Error("GroupServices: failed to list specialists: %v", err)
		return nil, fmt.Errorf("%w: failed to list specialists: %v", ErrInternal, err)
	}

	// 5. Загружаем способности мастеров
	capabilities, err := uc.catalogRepo.ListCapabilities(ctx)
	if err != nil {
		uc.logger.Error("GroupServices: failed to list capabilities: %v", err)
		return nil, fmt.Errorf("%w: failed to list capabilities: %v", ErrInternal, err)
	}

	// 6. Разбиваем услуги на группы
	results := buildGroups(selected, specialists, domain.NewCapabilitySet(capabilities))

	groups := make([]Group, len(results))
	for i, res := range results {
		group := domain.AppointmentGroup{Services: res.services}
		groups[i] = Group{
			Services:            res.services,
			PossibleSpecialists: res.possibleSpecialists,
			TotalDuration:       group.TotalDuration(),
			TotalPrice:          group.TotalPrice(),
			NoSpecialist:        res.noSpecialist,
		}
	}

	uc.logger.Info("GroupServices: %d services split into %d groups", len(selected), len(groups))

	return &Response{Groups: groups}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	seen := make(map[int64]struct{}, len(req.ServiceIDs))
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate serviceID %d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// resolveSelected сопоставляет выбранные ID с услугами каталога
func resolveSelected(serviceIDs []int64, services []domain.Service) ([]domain.Service, error) {
	byID := make(map[int64]domain.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	selected := make([]domain.Service, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		svc, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
		}
		selected = append(selected, svc)
	}

	return selected, nil
}
