package group_services

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	groupServices "github.com/m04kA/SMC-SalonService/internal/usecase/group_services"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidServiceIDs  = "некорректный список услуг"
	msgServiceNotFound    = "услуга не найдена"
)

type Handler struct {
	useCase GroupServicesUseCase
	logger  Logger
}

func NewHandler(useCase GroupServicesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointment-groups
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GroupServicesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointment-groups - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, groupServices.ErrInvalidInput):
			h.logger.Warn("POST /appointment-groups - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceIDs)

		case errors.Is(err, groupServices.ErrServiceNotFound):
			h.logger.Warn("POST /appointment-groups - Service not found: %v", err)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /appointment-groups - Failed to group services: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointment-groups - Grouped %d services into %d groups",
		len(req.ServiceIDs), len(result.Groups))
	handlers.RespondJSON(w, http.StatusOK, response)
}
