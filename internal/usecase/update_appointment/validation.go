package update_appointment

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const msgNotesTooLong = "notes must be at most 1000 characters."

// checkPermissions проверяет, может ли пользователь внести изменения
func checkPermissions(req *Request, current *domain.Appointment) error {
	if !req.Actor.CanAccess(current) {
		return ErrAccessDenied
	}

	if req.Actor.IsAdmin() {
		// pending выставляется только при создании
		if req.Status != nil && *req.Status == domain.StatusPending && current.Status != domain.StatusPending {
			return ErrInvalidStatus
		}
		return nil
	}

	if current.IsFinal() {
		return ErrAppointmentFinal
	}
	if req.Status != nil && *req.Status != domain.StatusCancelled {
		return ErrCustomerStatusChange
	}

	return nil
}

// validateRequest проверяет значения полей запроса
func validateRequest(req *Request) error {
	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		return domain.NewValidationError(ErrInvalidInput, msgNotesTooLong)
	}
	return nil
}

// applyChanges возвращает запись с примененными изменениями
// Поля customer и service меняет только администратор.
// Пустые строки времени не меняют текущее значение.
func applyChanges(current *domain.Appointment, req *Request) *domain.Appointment {
	next := *current

	if req.Actor.IsAdmin() {
		if req.CustomerID != nil {
			next.CustomerID = *req.CustomerID
		}
		if req.ServiceID != nil {
			next.ServiceID = *req.ServiceID
		}
	}

	if req.Date != nil {
		next.Date = *req.Date
	}
	if req.StartTime != nil && *req.StartTime != "" {
		next.StartTime = *req.StartTime
	}
	if req.EndTime != nil && *req.EndTime != "" {
		next.EndTime = *req.EndTime
	}
	if req.Status != nil {
		next.Status = *req.Status
	}
	if req.Notes != nil {
		next.Notes = req.Notes
	}

	return &next
}

// needsSlotCheck возвращает true, если итоговая запись занимает слот, который нужно перепроверить:
// запись не отменена и либо сдвинута во времени, либо сменила услугу, либо восстановлена из отмены
func needsSlotCheck(current, next *domain.Appointment) bool {
	if next.IsCancelled() {
		return false
	}

	moved := !sameDay(current, next) ||
		current.StartTime != next.StartTime ||
		current.EndTime != next.EndTime ||
		current.ServiceID != next.ServiceID

	return moved || current.IsCancelled()
}

func sameDay(a, b *domain.Appointment) bool {
	return a.Date.Year() == b.Date.Year() && a.Date.YearDay() == b.Date.YearDay()
}
