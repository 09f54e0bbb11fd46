package appointments

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonService/pkg/bookingcode"
)

// Service сервис для работы с записями (админ-панель и проверка по коду)
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// List получает записи с гибкой фильтрацией
// Поддерживает фильтрацию по мастеру, периоду, телефону и статусу
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments")

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Lookup получает публичное представление записи по коду
// Код нечувствителен к регистру, телефон клиента в ответ не попадает
func (s *Service) Lookup(ctx context.Context, code string) (*models.LookupResponse, error) {
	normalized := bookingcode.Normalize(code)
	if !bookingcode.IsValid(normalized) {
		s.logger.Warn("Lookup: invalid booking code format")
		return nil, ErrInvalidCode
	}

	apt, err := s.appointmentRepo.GetByBookingCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Lookup: appointment with code=%s not found", normalized)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Lookup: repository error: %v", err)
		return nil, fmt.Errorf("%w: Lookup - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Lookup: successfully fetched appointment id=%d", apt.ID)
	return models.ToLookupResponse(apt), nil
}

// UpdateStatus обновляет статус записи
// Админ может выполнить любой переход: pending/approved/rejected
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", id, req.Status)

	status, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	apt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to re-fetch appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d", id)
	return models.FromDomainAppointment(apt), nil
}

// Delete удаляет запись
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}
