package update_appointment

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	updateAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
)

var (
	errInvalidDate       = errors.New("invalid appointment date")
	errInvalidServiceID  = errors.New("invalid service id")
	errInvalidCustomerID = errors.New("invalid customer id")
	errInvalidStatus     = errors.New("invalid status")
)

// UpdateAppointmentRequest HTTP request model
// Отсутствующие поля не меняются
type UpdateAppointmentRequest struct {
	Customer        *string `json:"customer,omitempty"` // только для администратора
	Service         *string `json:"service,omitempty"`  // только для администратора
	AppointmentDate *string `json:"appointmentDate,omitempty"`
	StartTime       *string `json:"startTime,omitempty"`
	EndTime         *string `json:"endTime,omitempty"`
	Status          *string `json:"status,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// UpdateAppointmentResponse HTTP response model
type UpdateAppointmentResponse struct {
	Message     string                      `json:"message"`
	Appointment *updateAppointment.Response `json:"appointment"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Поля customer и service у клиента игнорируются
func (r *UpdateAppointmentRequest) ToUseCaseRequest(actor domain.Actor, id domain.AppointmentID) (*updateAppointment.Request, error) {
	req := &updateAppointment.Request{
		Actor:         actor,
		AppointmentID: id,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Notes:         r.Notes,
	}

	if actor.IsAdmin() {
		if r.Service != nil && *r.Service != "" {
			serviceID, err := domain.ParseServiceID(*r.Service)
			if err != nil {
				return nil, errInvalidServiceID
			}
			req.ServiceID = &serviceID
		}
		if r.Customer != nil && *r.Customer != "" {
			customerID, err := domain.ParseUserID(*r.Customer)
			if err != nil {
				return nil, errInvalidCustomerID
			}
			req.CustomerID = &customerID
		}
	}

	if r.AppointmentDate != nil && *r.AppointmentDate != "" {
		date, err := time.Parse(domain.DateFormat, *r.AppointmentDate)
		if err != nil {
			return nil, errInvalidDate
		}
		req.Date = &date
	}

	if r.Status != nil && *r.Status != "" {
		status, err := domain.ParseAppointmentStatus(*r.Status)
		if err != nil {
			return nil, errInvalidStatus
		}
		req.Status = &status
	}

	return req, nil
}
