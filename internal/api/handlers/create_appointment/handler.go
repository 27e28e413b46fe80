package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgRequiredFields     = "Service or serviceName, appointmentDate, startTime, and endTime are required."
	msgInvalidDate        = "Invalid appointment date."
	msgInvalidServiceID   = "Invalid service id."
	msgInvalidCustomerID  = "Invalid customer id."
	msgServiceNotFound    = "Service not found."
	msgSlotAlreadyBooked  = "Selected slot is already booked."
	msgUnauthorized       = "Unauthorized."
	msgCreated            = "Appointment created successfully."
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
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.missingRequired() {
		handlers.RespondBadRequest(w, msgRequiredFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		switch {
		case errors.Is(err, errInvalidServiceID):
			handlers.RespondBadRequest(w, msgInvalidServiceID)
		case errors.Is(err, errInvalidCustomerID):
			handlers.RespondBadRequest(w, msgInvalidCustomerID)
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
			h.logger.Warn("POST /appointments - Validation failed: user_id=%s, %s", actor.UserID, validationErr.Message)
			handlers.RespondBadRequest(w, validationErr.Message)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: user_id=%s", actor.UserID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /appointments - Slot already booked: user_id=%s, date=%s, time=%s-%s",
				actor.UserID, req.AppointmentDate, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%s, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, user_id=%s",
		result.ID, actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, CreateAppointmentResponse{
		Message:     msgCreated,
		Appointment: result,
	})
}
