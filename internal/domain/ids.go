package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidID возвращается, когда идентификатор не является корректным UUID
var ErrInvalidID = errors.New("domain: invalid identifier")

// AppointmentID identifies an appointment
type AppointmentID struct{ uuid.UUID }

// ServiceID identifies a catalog service
type ServiceID struct{ uuid.UUID }

// UserID identifies a customer or an admin
type UserID struct{ uuid.UUID }

func NewAppointmentID() AppointmentID { return AppointmentID{uuid.New()} }
func NewServiceID() ServiceID         { return ServiceID{uuid.New()} }

// ParseAppointmentID validates and parses an appointment identifier
func ParseAppointmentID(value string) (AppointmentID, error) {
	id, err := parseID(value)
	return AppointmentID{id}, err
}

// ParseServiceID validates and parses a service identifier
func ParseServiceID(value string) (ServiceID, error) {
	id, err := parseID(value)
	return ServiceID{id}, err
}

// ParseUserID validates and parses a user identifier
func ParseUserID(value string) (UserID, error) {
	id, err := parseID(value)
	return UserID{id}, err
}

func parseID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, value)
	}
	if id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: nil uuid", ErrInvalidID)
	}
	return id, nil
}
