package get_availability

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability/models"
)

// AvailabilityEnvelope HTTP response model
type AvailabilityEnvelope struct {
	Availability *models.SettingsResponse `json:"availability"`
}

type Handler struct {
	service AvailabilityService
	withID  bool
	logger  Logger
}

// NewHandler создает публичный обработчик
func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// NewAdminHandler создает обработчик для администратора (ответ содержит id настроек)
func NewAdminHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		withID:  true,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability и GET /api/v1/admin/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context(), h.withID)
	if err != nil {
		h.logger.Error("GET availability - Failed to get settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AvailabilityEnvelope{Availability: settings})
}
