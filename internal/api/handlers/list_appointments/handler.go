package list_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
)

const (
	msgInvalidStatus     = "Invalid status value."
	msgInvalidServiceID  = "Invalid service id."
	msgInvalidCustomerID = "Invalid customer id."
	msgInvalidDateFrom   = "Invalid dateFrom value."
	msgInvalidDateTo     = "Invalid dateTo value."
	msgUnauthorized      = "Unauthorized."
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

// Handle GET /api/v1/appointments
// Клиент видит только свои записи, администратор - все
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	filter, err := parseFilter(r.URL.Query(), actor)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid query: %v", err)
		switch {
		case errors.Is(err, errInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, errInvalidServiceID):
			handlers.RespondBadRequest(w, msgInvalidServiceID)
		case errors.Is(err, errInvalidCustomerID):
			handlers.RespondBadRequest(w, msgInvalidCustomerID)
		case errors.Is(err, errInvalidDateFrom):
			handlers.RespondBadRequest(w, msgInvalidDateFrom)
		default:
			handlers.RespondBadRequest(w, msgInvalidDateTo)
		}
		return
	}

	result, err := h.service.List(r.Context(), actor, filter)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: user_id=%s, error=%v", actor.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: user_id=%s, count=%d",
		actor.UserID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
