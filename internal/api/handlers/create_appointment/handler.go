package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidName        = "имя должно содержать не менее 3 символов"
	msgInvalidPhone       = "некорректный номер телефона"
	msgInvalidInput       = "некорректные данные записи"
	msgBlocked            = "запись по этому номеру телефона недоступна"
	msgRateLimited        = "превышен лимит записей, попробуйте завтра"
	msgServiceNotFound    = "услуга не найдена"
	msgSpecialistNotFound = "мастер не найден"
	msgSpecialistInactive = "мастер недоступен для записи"
	msgSalonClosed        = "салон закрыт в выбранную дату"
	msgPersistenceFailure = "не удалось сохранить запись, попробуйте ещё раз"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidName):
			h.logger.Warn("POST /appointments - Invalid customer name: %v", err)
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, createAppointment.ErrInvalidPhone):
			h.logger.Warn("POST /appointments - Invalid customer phone: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrBlocked):
			h.logger.Warn("POST /appointments - Phone is blacklisted")
			handlers.RespondForbidden(w, msgBlocked)

		case errors.Is(err, createAppointment.ErrRateLimited):
			h.logger.Warn("POST /appointments - Rate limit exceeded: %v", err)
			handlers.RespondError(w, http.StatusTooManyRequests, msgRateLimited)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: %v", err)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrSpecialistNotFound):
			h.logger.Warn("POST /appointments - Specialist not found: %v", err)
			handlers.RespondNotFound(w, msgSpecialistNotFound)

		case errors.Is(err, createAppointment.ErrSpecialistInactive):
			h.logger.Warn("POST /appointments - Specialist inactive: %v", err)
			handlers.RespondBadRequest(w, msgSpecialistInactive)

		case errors.Is(err, createAppointment.ErrSalonClosed):
			h.logger.Warn("POST /appointments - Salon closed: %v", err)
			handlers.RespondBadRequest(w, msgSalonClosed)

		case errors.Is(err, createAppointment.ErrPersistenceFailure):
			h.logger.Error("POST /appointments - Persistence failure: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgPersistenceFailure)

		default:
			h.logger.Error("POST /appointments - Failed to create appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Created %d appointments", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusCreated, response)
}
