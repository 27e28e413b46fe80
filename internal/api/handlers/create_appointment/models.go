package create_appointment

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

var (
	errInvalidDate       = errors.New("invalid appointment date")
	errInvalidServiceID  = errors.New("invalid service id")
	errInvalidCustomerID = errors.New("invalid customer id")
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Service         string  `json:"service"`     // UUID услуги
	ServiceName     string  `json:"serviceName"` // используется, если service не передан
	AppointmentDate string  `json:"appointmentDate"`
	StartTime       string  `json:"startTime"` // "10:00 AM"
	EndTime         string  `json:"endTime"`   // "11:00 AM"
	Notes           *string `json:"notes,omitempty"`
	CustomerID      string  `json:"customerId,omitempty"` // только для администратора
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	Message     string                      `json:"message"`
	Appointment *createAppointment.Response `json:"appointment"`
}

// missingRequired возвращает true, если не хватает обязательных полей
func (r *CreateAppointmentRequest) missingRequired() bool {
	return (r.Service == "" && strings.TrimSpace(r.ServiceName) == "") ||
		r.AppointmentDate == "" || r.StartTime == "" || r.EndTime == ""
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(actor domain.Actor) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, errInvalidDate
	}

	req := &createAppointment.Request{
		Actor:       actor,
		ServiceName: r.ServiceName,
		Date:        date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Notes:       r.Notes,
	}

	if r.Service != "" {
		serviceID, err := domain.ParseServiceID(r.Service)
		if err != nil {
			return nil, errInvalidServiceID
		}
		req.ServiceID = &serviceID
	}

	if actor.IsAdmin() && r.CustomerID != "" {
		customerID, err := domain.ParseUserID(r.CustomerID)
		if err != nil {
			return nil, errInvalidCustomerID
		}
		req.CustomerID = &customerID
	}

	return req, nil
}
