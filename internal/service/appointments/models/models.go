package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              domain.AppointmentID     `json:"id"`
	CustomerID      domain.UserID            `json:"customerId"`
	ServiceID       domain.ServiceID         `json:"serviceId"`
	AppointmentDate string                   `json:"appointmentDate"` // YYYY-MM-DD
	StartTime       string                   `json:"startTime"`
	EndTime         string                   `json:"endTime"`
	Status          domain.AppointmentStatus `json:"status"`
	Notes           *string                  `json:"notes,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		CustomerID:      a.CustomerID,
		ServiceID:       a.ServiceID,
		AppointmentDate: a.Date.Format(domain.DateFormat),
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		Status:          a.Status,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appointment := range appointments {
		if appointmentResp := FromDomainAppointment(appointment); appointmentResp != nil {
			resp.Appointments = append(resp.Appointments, *appointmentResp)
		}
	}

	return resp
}
