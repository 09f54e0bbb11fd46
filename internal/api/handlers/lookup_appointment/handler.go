package lookup_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
)

const (
	msgInvalidCode = "некорректный код записи"
	msgNotFound    = "запись с таким кодом не найдена"
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

// Handle GET /api/v1/appointments/lookup/{code}
// Код нечувствителен к регистру
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["code"]

	result, err := h.service.Lookup(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidCode):
			h.logger.Warn("GET /appointments/lookup/{code} - Invalid code format")
			handlers.RespondBadRequest(w, msgInvalidCode)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/lookup/{code} - Appointment not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /appointments/lookup/{code} - Failed to lookup appointment: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/lookup/{code} - Appointment found")
	handlers.RespondJSON(w, http.StatusOK, result)
}
