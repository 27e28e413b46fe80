package list_services

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

type Handler struct {
	list   func(ctx context.Context) (*models.ServiceListResponse, error)
	logger Logger
}

// NewHandler создает публичный обработчик (только активные услуги)
func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		list:   service.ListActive,
		logger: logger,
	}
}

// NewAdminHandler создает обработчик для администратора (все услуги)
func NewAdminHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		list:   service.ListAll,
		logger: logger,
	}
}

// Handle GET /api/v1/services и GET /api/v1/admin/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.list(r.Context())
	if err != nil {
		h.logger.Error("GET services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
