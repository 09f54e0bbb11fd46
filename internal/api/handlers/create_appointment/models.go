package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentGroupRequest выбор клиента для одной группы услуг
type AppointmentGroupRequest struct {
	ServiceIDs   []int64 `json:"serviceIds"`
	SpecialistID int64   `json:"specialistId"`
	Date         string  `json:"date"` // "2026-03-16"
	Time         string  `json:"time"` // "10:00"
}

// CreateAppointmentRequest HTTP request model
// Одна отправка формы мастера записи, каждая группа становится одной записью
type CreateAppointmentRequest struct {
	CustomerName  string                    `json:"customerName"`
	CustomerPhone string                    `json:"customerPhone"`
	Groups        []AppointmentGroupRequest `json:"groups"`
}

// CreatedAppointmentResponse созданная запись
type CreatedAppointmentResponse struct {
	ID              int64   `json:"id"`
	ServiceTitle    string  `json:"serviceTitle"`
	SpecialistID    int64   `json:"specialistId"`
	SpecialistName  string  `json:"specialistName"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	DurationMinutes int     `json:"durationMinutes"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
	BookingCode     string  `json:"bookingCode"`
	CreatedAt       string  `json:"createdAt"`
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	Appointments []CreatedAppointmentResponse `json:"appointments"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	groups := make([]createAppointment.GroupInput, len(r.Groups))
	for i, g := range r.Groups {
		date, err := time.Parse(domain.DateFormat, g.Date)
		if err != nil {
			return nil, err
		}

		startTime, err := types.NewTimeStringFromString(g.Time)
		if err != nil {
			return nil, err
		}

		groups[i] = createAppointment.GroupInput{
			ServiceIDs:   g.ServiceIDs,
			SpecialistID: g.SpecialistID,
			Date:         date,
			Time:         startTime,
		}
	}

	return &createAppointment.Request{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Groups:        groups,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	appointments := make([]CreatedAppointmentResponse, len(resp.Appointments))
	for i, apt := range resp.Appointments {
		appointments[i] = CreatedAppointmentResponse{
			ID:              apt.ID,
			ServiceTitle:    apt.ServiceTitle,
			SpecialistID:    apt.SpecialistID,
			SpecialistName:  apt.SpecialistName,
			Date:            apt.StartTime.Format(domain.DateFormat),
			Time:            apt.AppointmentTime.String(),
			DurationMinutes: apt.DurationMinutes,
			TotalPrice:      apt.TotalPrice,
			Status:          apt.Status,
			BookingCode:     apt.BookingCode,
			CreatedAt:       apt.CreatedAt.Format(time.RFC3339),
		}
	}

	return &CreateAppointmentResponse{Appointments: appointments}
}
