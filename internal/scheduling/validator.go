package scheduling

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Сообщения валидатора - единственная пользовательская поверхность ошибок ядра
const (
	MsgInvalidFormat     = "startTime and endTime must be in hh:mm AM/PM format."
	MsgInvalidTimeRange  = "Invalid time range. endTime must be after startTime."
	MsgOutsideHours      = "Selected time is outside working hours."
	MsgOverlapsBreak     = "Selected time overlaps business break hours."
	MsgOutsideWorkingDay = "Selected date is outside configured working days."
	MsgNotAvailableSlot  = "Selected startTime is not an available slot."
)

// Reason машинно-читаемая причина отказа (используется в метриках и логах)
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonInvalidFormat    Reason = "invalid_format"
	ReasonInvalidTimeRange Reason = "invalid_time_range"
	ReasonOutsideHours     Reason = "outside_working_hours"
	ReasonOverlapsBreak    Reason = "overlaps_break"
	ReasonOutsideWorkDay   Reason = "outside_working_days"
	ReasonNotAvailableSlot Reason = "not_available_slot"
)

// ValidationResult итог проверки окна записи
// При Valid = true заполнены StartMinutes и EndMinutes, иначе Reason и Message
type ValidationResult struct {
	Valid        bool
	Reason       Reason
	Message      string
	StartMinutes int
	EndMinutes   int
}

// Window returns the validated window in minutes since midnight
func (r ValidationResult) Window() Window {
	return Window{StartMinutes: r.StartMinutes, EndMinutes: r.EndMinutes}
}

// ValidateSlot проверяет окно записи против настроек рабочего времени
//
// Проверки идут в фиксированном порядке, побеждает первая неуспешная:
//  1. формат обоих времен "h:mm AM/PM"
//  2. конец позже начала
//  3. окно внутри рабочих часов
//  4. окно не пересекает перерыв
//  5. день недели рабочий
//  6. startTime дословно совпадает с одним из сгенерированных слотов
func ValidateSlot(settings *domain.BusinessHoursSettings, date time.Time, startTime, endTime string) ValidationResult {
	if !types.IsTime12(startTime) || !types.IsTime12(endTime) {
		return reject(ReasonInvalidFormat, MsgInvalidFormat)
	}

	startMinutes, okStart := types.Parse12(startTime)
	endMinutes, okEnd := types.Parse12(endTime)
	if !okStart || !okEnd || startMinutes >= endMinutes {
		return reject(ReasonInvalidTimeRange, MsgInvalidTimeRange)
	}

	candidate := Window{StartMinutes: startMinutes, EndMinutes: endMinutes}

	hours, ok := workingHours(settings)
	if !ok || candidate.StartMinutes < hours.StartMinutes || candidate.EndMinutes > hours.EndMinutes {
		return reject(ReasonOutsideHours, MsgOutsideHours)
	}

	if breakWindow, hasBreak := BreakWindow(settings); hasBreak && candidate.Overlaps(breakWindow) {
		return reject(ReasonOverlapsBreak, MsgOverlapsBreak)
	}

	if !settings.IsWorkingDay(date.Weekday()) {
		return reject(ReasonOutsideWorkDay, MsgOutsideWorkingDay)
	}

	if !containsSlot(BuildSlots(settings), startTime) {
		return reject(ReasonNotAvailableSlot, MsgNotAvailableSlot)
	}

	return ValidationResult{
		Valid:        true,
		StartMinutes: startMinutes,
		EndMinutes:   endMinutes,
	}
}

func reject(reason Reason, message string) ValidationResult {
	return ValidationResult{Reason: reason, Message: message}
}

func containsSlot(slots []string, startTime string) bool {
	for _, slot := range slots {
		if slot == startTime {
			return true
		}
	}
	return false
}
