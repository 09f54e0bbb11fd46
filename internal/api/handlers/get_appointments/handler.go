package get_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

const (
	msgInvalidSpecialistID = "некорректный ID мастера"
	msgInvalidDateFrom     = "некорректный формат dateFrom, ожидается YYYY-MM-DD"
	msgInvalidDateTo       = "некорректный формат dateTo, ожидается YYYY-MM-DD"
	msgInvalidStatus       = "некорректный статус записи"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments
// Query params (все опциональны): status, specialistId, dateFrom, dateTo, phone
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListAppointmentsRequest{}
	query := r.URL.Query()

	if specialistIDStr := query.Get("specialistId"); specialistIDStr != "" {
		specialistID, err := strconv.ParseInt(specialistIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/appointments - Invalid specialist ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSpecialistID)
			return
		}
		req.SpecialistID = &specialistID
	}

	if dateFromStr := query.Get("dateFrom"); dateFromStr != "" {
		dateFrom, err := time.Parse(domain.DateFormat, dateFromStr)
		if err != nil {
			h.logger.Warn("GET /admin/appointments - Invalid dateFrom: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateFrom)
			return
		}
		req.StartDate = &dateFrom
	}

	if dateToStr := query.Get("dateTo"); dateToStr != "" {
		dateTo, err := time.Parse(domain.DateFormat, dateToStr)
		if err != nil {
			h.logger.Warn("GET /admin/appointments - Invalid dateTo: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateTo)
			return
		}
		// Включаем весь день dateTo в период
		req.EndDate = ptr.Ptr(dateTo.AddDate(0, 0, 1))
	}

	if phoneStr := query.Get("phone"); phoneStr != "" {
		req.Phone = ptr.Ptr(domain.NormalizePhone(phoneStr))
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("GET /admin/appointments - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/appointments - Failed to list appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/appointments - Retrieved %d appointments", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
