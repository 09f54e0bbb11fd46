package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
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

// Handle GET /api/v1/catalog
// Возвращает услуги, активных мастеров и пары способностей одним ответом
// для начальной загрузки мастера записи
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetCatalog(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog - Failed to get catalog: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /catalog - Catalog retrieved successfully: services=%d, specialists=%d",
		len(result.Services), len(result.Specialists))
	handlers.RespondJSON(w, http.StatusOK, result)
}
