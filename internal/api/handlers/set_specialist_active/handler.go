package set_specialist_active

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
	msgInvalidSpecialistID = "некорректный ID мастера"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgSpecialistNotFound  = "мастер не найден"
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

// Handle PATCH /api/v1/admin/specialists/{specialistId}/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	specialistIDStr := vars["specialistId"]

	specialistID, err := strconv.ParseInt(specialistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/specialists/{id}/active - Invalid specialist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	var req models.SetSpecialistActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/specialists/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetSpecialistActive(r.Context(), specialistID, &req); err != nil {
		switch {
		case errors.Is(err, salon.ErrSpecialistNotFound):
			h.logger.Warn("PATCH /admin/specialists/{id}/active - Specialist not found: specialist_id=%d", specialistID)
			handlers.RespondNotFound(w, msgSpecialistNotFound)

		default:
			h.logger.Error("PATCH /admin/specialists/{id}/active - Failed to update specialist: specialist_id=%d, error=%v",
				specialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/specialists/{id}/active - Specialist updated successfully: specialist_id=%d, active=%v",
		specialistID, req.IsActive)
	handlers.RespondNoContent(w)
}
