package manage_closed_days

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/salon"
	"github.com/m04kA/SMC-SalonService/internal/service/salon/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDayID       = "некорректный ID нерабочего дня"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDayExists          = "дата уже отмечена нерабочей"
	msgDayNotFound        = "нерабочий день не найден"
)

type Handler struct {
	service SalonService
	logger  Logger
}

func NewHandler(service SalonService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/closed-days
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListClosedDays(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/closed-days - Failed to list closed days: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/closed-days - Retrieved %d closed days", len(result.ClosedDays))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAdd POST /api/v1/admin/closed-days
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req models.AddClosedDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/closed-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddClosedDay(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, salon.ErrInvalidInput):
			h.logger.Warn("POST /admin/closed-days - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, salon.ErrClosedDayExists):
			h.logger.Warn("POST /admin/closed-days - Closed day already exists: date=%s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDayExists)

		default:
			h.logger.Error("POST /admin/closed-days - Failed to add closed day: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/closed-days - Closed day added successfully: day_id=%d, date=%s", result.ID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleRemove DELETE /api/v1/admin/closed-days/{dayId}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dayIDStr := vars["dayId"]

	dayID, err := strconv.ParseInt(dayIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/closed-days/{id} - Invalid day ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayID)
		return
	}

	if err := h.service.RemoveClosedDay(r.Context(), dayID); err != nil {
		switch {
		case errors.Is(err, salon.ErrClosedDayNotFound):
			h.logger.Warn("DELETE /admin/closed-days/{id} - Closed day not found: day_id=%d", dayID)
			handlers.RespondNotFound(w, msgDayNotFound)

		default:
			h.logger.Error("DELETE /admin/closed-days/{id} - Failed to remove closed day: day_id=%d, error=%v", dayID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/closed-days/{id} - Closed day removed successfully: day_id=%d", dayID)
	handlers.RespondNoContent(w)
}
