package domain

import (
	"fmt"
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending     AppointmentStatus = "pending"
	StatusApproved    AppointmentStatus = "approved"
	StatusRescheduled AppointmentStatus = "rescheduled"
	StatusCancelled   AppointmentStatus = "cancelled"
	StatusCompleted   AppointmentStatus = "completed"
)

// ParseAppointmentStatus converts a raw status into AppointmentStatus
func ParseAppointmentStatus(value string) (AppointmentStatus, error) {
	for _, s := range AllStatuses {
		if string(s) == value {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown appointment status %q", value)
}

// Appointment represents a customer booking of a service
type Appointment struct {
	ID         AppointmentID
	CustomerID UserID
	ServiceID  ServiceID
	Date       time.Time // только календарный день, время суток игнорируется
	StartTime  string    // "h:mm AM/PM"
	EndTime    string    // "h:mm AM/PM"
	Status     AppointmentStatus
	Notes      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsFinal returns true if the appointment is not expected to change anymore
func (a *Appointment) IsFinal() bool {
	return a.Status == StatusCancelled || a.Status == StatusCompleted
}

// BelongsTo returns true if the appointment was booked for the user
func (a *Appointment) BelongsTo(userID UserID) bool {
	return a.CustomerID == userID
}

// AppointmentsFilter фильтр списка записей
type AppointmentsFilter struct {
	CustomerID *UserID            // nil - все клиенты
	ServiceID  *ServiceID         // nil - все услуги
	Status     *AppointmentStatus // nil - любой статус
	DateFrom   *time.Time         // включительно
	DateTo     *time.Time         // включительно
}
