package update_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	updateAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
)

const (
	msgInvalidRequestBody   = "Invalid request body."
	msgInvalidAppointmentID = "Invalid appointment id."
	msgInvalidDate          = "Invalid appointment date."
	msgInvalidServiceID     = "Invalid service id."
	msgInvalidCustomerID    = "Invalid customer id."
	msgInvalidStatus        = "Invalid status value."
	msgNotFound             = "Appointment not found."
	msgServiceNotFound      = "Service not found."
	msgForbidden            = "Forbidden."
	msgCustomerStatus       = "Customers can only change status to cancelled."
	msgAppointmentFinal     = "Cancelled or completed appointments cannot be changed."
	msgPendingNotAllowed    = "Status cannot be changed back to pending."
	msgSlotAlreadyBooked    = "Selected slot is already booked."
	msgUnauthorized         = "Unauthorized."
	msgUpdated              = "Appointment updated successfully."
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	appointmentID, err := domain.ParseAppointmentID(mux.Vars(r)["appointmentId"])
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, appointmentID)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Failed to parse request: %v", err)
		switch {
		case errors.Is(err, errInvalidServiceID):
			handlers.RespondBadRequest(w, msgInvalidServiceID)
		case errors.Is(err, errInvalidCustomerID):
			handlers.RespondBadRequest(w, msgInvalidCustomerID)
		case errors.Is(err, errInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PATCH /appointments/{id} - Validation failed: appointment_id=%s, %s",
				appointmentID, validationErr.Message)
			handlers.RespondBadRequest(w, validationErr.Message)

		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAppointment.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id} - Access denied: appointment_id=%s, user_id=%s",
				appointmentID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateAppointment.ErrCustomerStatusChange):
			handlers.RespondForbidden(w, msgCustomerStatus)

		case errors.Is(err, updateAppointment.ErrAppointmentFinal):
			handlers.RespondForbidden(w, msgAppointmentFinal)

		case errors.Is(err, updateAppointment.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgPendingNotAllowed)

		case errors.Is(err, updateAppointment.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, updateAppointment.ErrSlotAlreadyBooked):
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed to update appointment: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Appointment updated successfully: appointment_id=%s, user_id=%s",
		appointmentID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, UpdateAppointmentResponse{
		Message:     msgUpdated,
		Appointment: result,
	})
}
