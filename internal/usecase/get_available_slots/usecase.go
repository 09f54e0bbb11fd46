package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
)

// UseCase use case получения сетки доступных слотов мастера на день
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	closedDayRepo   ClosedDayRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	closedDayRepo ClosedDayRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		closedDayRepo:   closedDayRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: specialist=%d, date=%s",
		req.SpecialistID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что мастер существует и активен
	specialist, err := uc.catalogRepo.GetSpecialist(ctx, req.SpecialistID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSpecialistNotFound) {
			uc.logger.Warn("GetAvailableSlots: specialist id=%d not found", req.SpecialistID)
			return nil, ErrSpecialistNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get specialist id=%d: %v", req.SpecialistID, err)
		return nil, fmt.Errorf("%w: failed to get specialist: %v", ErrInternal, err)
	}

	if !specialist.IsActive {
		uc.logger.Warn("GetAvailableSlots: specialist id=%d is not active", req.SpecialistID)
		return nil, ErrSpecialistInactive
	}

	// 3. Нерабочий день: возвращаем полную сетку, все слоты недоступны
	closed, err := uc.closedDayRepo.IsClosed(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to check closed day: %v", err)
		return nil, fmt.Errorf("%w: failed to check closed day: %v", ErrInternal, err)
	}

	if closed {
		uc.logger.Info("GetAvailableSlots: salon is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			SpecialistID: req.SpecialistID,
			Date:         req.Date,
			Closed:       true,
			Slots:        closedDaySlots(),
		}, nil
	}

	// 4. Получаем блокирующие записи мастера на эту дату
	appointments, err := uc.appointmentRepo.ListBlockingBySpecialistAndDay(ctx, req.SpecialistID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Строим сетку с учётом занятости и текущего времени
	now := uc.timeProvider.Now()
	slots := buildSlots(req.Date, appointments, now)

	uc.logger.Info("GetAvailableSlots: built %d slots for specialist=%d, date=%s",
		len(slots), req.SpecialistID, req.Date.Format(domain.DateFormat))

	return &Response{
		SpecialistID: req.SpecialistID,
		Date:         req.Date,
		Slots:        slots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SpecialistID <= 0 {
		return fmt.Errorf("%w: specialistID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
