package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

const (
	msgInvalidSpecialistID = "некорректный ID мастера"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSpecialistNotFound  = "мастер не найден"
	msgSpecialistInactive  = "мастер недоступен для записи"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/specialists/{specialistId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	specialistIDStr := vars["specialistId"]
	specialistID, err := strconv.ParseInt(specialistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /specialists/{id}/available-slots - Invalid specialist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /specialists/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(specialistID, dateStr)
	if err != nil {
		h.logger.Warn("GET /specialists/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrSpecialistNotFound):
			h.logger.Warn("GET /specialists/{id}/available-slots - Specialist not found: specialist_id=%d", specialistID)
			handlers.RespondNotFound(w, msgSpecialistNotFound)

		case errors.Is(err, getAvailableSlots.ErrSpecialistInactive):
			h.logger.Warn("GET /specialists/{id}/available-slots - Specialist inactive: specialist_id=%d", specialistID)
			handlers.RespondBadRequest(w, msgSpecialistInactive)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /specialists/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /specialists/{id}/available-slots - Failed to get slots: specialist_id=%d, error=%v",
				specialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /specialists/{id}/available-slots - Slots retrieved successfully: specialist_id=%d, date=%s, slots_count=%d",
		specialistID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
