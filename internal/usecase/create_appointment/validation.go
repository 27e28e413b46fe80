package create_appointment

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const (
	msgRequiredFields = "Service or serviceName, appointmentDate, startTime, and endTime are required."
	msgNotesTooLong   = "notes must be at most 1000 characters."
)

// validateRequest проверяет обязательные поля запроса
func validateRequest(req *Request) error {
	if (req.ServiceID == nil && req.ServiceName == "") ||
		req.Date.IsZero() || req.StartTime == "" || req.EndTime == "" {
		return domain.NewValidationError(ErrInvalidInput, msgRequiredFields)
	}

	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		return domain.NewValidationError(ErrInvalidInput, msgNotesTooLong)
	}

	return nil
}

// resolveCustomer определяет, на кого оформляется запись
// Администратор может записать любого клиента, клиент - только себя
func resolveCustomer(req *Request) domain.UserID {
	if req.Actor.IsAdmin() && req.CustomerID != nil {
		return *req.CustomerID
	}
	return req.Actor.UserID
}
