package scheduling

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Window полуоткрытый интервал [StartMinutes, EndMinutes) в минутах от полуночи
type Window struct {
	StartMinutes int
	EndMinutes   int
}

// Overlaps проверяет пересечение полуоткрытых интервалов
// Интервалы, которые только касаются границами, не пересекаются:
// - 10:00-11:00 и 10:30-11:30 → пересекаются
// - 10:00-11:00 и 11:00-12:00 → нет
func (w Window) Overlaps(other Window) bool {
	return w.StartMinutes < other.EndMinutes && w.EndMinutes > other.StartMinutes
}

// ConflictResult итог поиска пересечений
type ConflictResult struct {
	// Conflict первая найденная пересекающаяся запись или nil
	Conflict *domain.Appointment

	// Unparsable записи с битым временем, которые были пропущены
	Unparsable []*domain.Appointment
}

// HasConflict returns true if an overlapping appointment was found
func (r ConflictResult) HasConflict() bool {
	return r.Conflict != nil
}

// DetectConflict ищет активную запись, пересекающуюся с окном
//
// Ожидается, что existing - записи той же услуги за тот же день.
// Отмененные записи и запись excludeID (при переносе самой себя) игнорируются.
// Записи, время которых не парсится, пропускаются и возвращаются в Unparsable,
// чтобы битые данные не блокировали слот навсегда.
func DetectConflict(window Window, existing []*domain.Appointment, excludeID *domain.AppointmentID) ConflictResult {
	var result ConflictResult

	for _, appointment := range existing {
		if appointment.IsCancelled() {
			continue
		}
		if excludeID != nil && appointment.ID == *excludeID {
			continue
		}

		existingStart, okStart := types.Parse12(appointment.StartTime)
		existingEnd, okEnd := types.Parse12(appointment.EndTime)
		if !okStart || !okEnd {
			result.Unparsable = append(result.Unparsable, appointment)
			continue
		}

		if window.Overlaps(Window{StartMinutes: existingStart, EndMinutes: existingEnd}) {
			result.Conflict = appointment
			return result
		}
	}

	return result
}

// FindConflict возвращает первую пересекающуюся запись или nil
func FindConflict(window Window, existing []*domain.Appointment, excludeID *domain.AppointmentID) *domain.Appointment {
	return DetectConflict(window, existing, excludeID).Conflict
}
