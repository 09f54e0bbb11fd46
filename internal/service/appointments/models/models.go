package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос на получение записей с фильтрацией
type ListAppointmentsRequest struct {
	SpecialistID *int64     `json:"specialistId,omitempty"` // Фильтр по мастеру (опционально)
	StartDate    *time.Time `json:"startDate,omitempty"`    // Начало периода (опционально)
	EndDate      *time.Time `json:"endDate,omitempty"`      // Конец периода (опционально)
	Phone        *string    `json:"phone,omitempty"`        // Фильтр по телефону (опционально)
	Status       *string    `json:"status,omitempty"`       // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		SpecialistID: r.SpecialistID,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Phone:        r.Phone,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.StatusIn = []domain.AppointmentStatus{status}
	}

	return filter, nil
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID            int64  `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	ServiceTitle   string `json:"serviceTitle"`
	SpecialistID   int64  `json:"specialistId"`
	SpecialistName string `json:"specialistName"`

	Date            string `json:"date"`      // "2026-03-16"
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	BookingCode     string `json:"bookingCode"`

	CreatedAt time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// LookupResponse ответ проверки статуса по коду записи
// Телефон клиента наружу не отдаётся: код знает только сам клиент,
// но лишние персональные данные в публичном ответе не нужны
type LookupResponse struct {
	ServiceTitle    string `json:"serviceTitle"`
	SpecialistName  string `json:"specialistName"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	BookingCode     string `json:"bookingCode"`
}

// Методы конвертации

// ToDomainStatus конвертирует строку в domain.AppointmentStatus
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}
	return "", ErrInvalidStatus
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		CustomerName:    a.CustomerName,
		CustomerPhone:   a.CustomerPhone,
		ServiceTitle:    a.ServiceTitle,
		SpecialistID:    a.SpecialistID,
		SpecialistName:  a.SpecialistName,
		Date:            a.StartTime.Format(domain.DateFormat),
		StartTime:       a.AppointmentTime.String(),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		BookingCode:     a.BookingCode,
		CreatedAt:       a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, apt := range appointments {
		if aptResp := FromDomainAppointment(apt); aptResp != nil {
			resp.Appointments = append(resp.Appointments, *aptResp)
		}
	}

	return resp
}

// ToLookupResponse конвертирует domain модель в публичный DTO проверки статуса
func ToLookupResponse(a *domain.Appointment) *LookupResponse {
	if a == nil {
		return nil
	}

	return &LookupResponse{
		ServiceTitle:    a.ServiceTitle,
		SpecialistName:  a.SpecialistName,
		Date:            a.StartTime.Format(domain.DateFormat),
		StartTime:       a.AppointmentTime.String(),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		BookingCode:     a.BookingCode,
	}
}
