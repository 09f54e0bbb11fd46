package manage_blacklist

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
	msgInvalidEntryID     = "некорректный ID записи чёрного списка"
	msgInvalidPhone       = "некорректный номер телефона"
	msgEntryExists        = "телефон уже в чёрном списке"
	msgEntryNotFound      = "запись чёрного списка не найдена"
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

// HandleList GET /api/v1/admin/blacklist
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBlacklist(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/blacklist - Failed to list blacklist: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/blacklist - Retrieved %d entries", len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAdd POST /api/v1/admin/blacklist
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req models.AddBlacklistEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blacklist - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddBlacklistEntry(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, salon.ErrInvalidInput):
			h.logger.Warn("POST /admin/blacklist - Invalid phone: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, salon.ErrBlacklistEntryExists):
			h.logger.Warn("POST /admin/blacklist - Entry already exists")
			handlers.RespondError(w, http.StatusConflict, msgEntryExists)

		default:
			h.logger.Error("POST /admin/blacklist - Failed to add entry: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blacklist - Entry added successfully: entry_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleRemove DELETE /api/v1/admin/blacklist/{entryId}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entryIDStr := vars["entryId"]

	entryID, err := strconv.ParseInt(entryIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/blacklist/{id} - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	if err := h.service.RemoveBlacklistEntry(r.Context(), entryID); err != nil {
		switch {
		case errors.Is(err, salon.ErrBlacklistEntryNotFound):
			h.logger.Warn("DELETE /admin/blacklist/{id} - Entry not found: entry_id=%d", entryID)
			handlers.RespondNotFound(w, msgEntryNotFound)

		default:
			h.logger.Error("DELETE /admin/blacklist/{id} - Failed to remove entry: entry_id=%d, error=%v", entryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blacklist/{id} - Entry removed successfully: entry_id=%d", entryID)
	handlers.RespondNoContent(w)
}
