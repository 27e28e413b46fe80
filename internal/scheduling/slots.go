// Package scheduling turns business-hours settings into bookable slots and
// decides whether a proposed appointment window is legal and conflict-free.
// Every function here is pure: no I/O, no panics, results are returned as values.
package scheduling

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// GenerateSlots генерирует слоты на день по настройкам рабочего времени
//
// Слоты идут с шагом slotDuration от открытия до закрытия. Слот, который хотя бы
// частично пересекается с перерывом, выбрасывается целиком (не обрезается).
// Хвост короче slotDuration перед закрытием тоже отбрасывается.
//
// Примеры (09:00-17:00, шаг 60, перерыв 13:00-14:00):
// - 12:00-13:00 → есть (граничит с перерывом)
// - 13:00-14:00 → нет
// - 14:00-15:00 → есть
func GenerateSlots(settings *domain.BusinessHoursSettings) []domain.Slot {
	slots := make([]domain.Slot, 0)

	hours, ok := workingHours(settings)
	if !ok || settings.SlotDurationMinutes <= 0 {
		return slots
	}

	breakWindow, hasBreak := BreakWindow(settings)
	step := settings.SlotDurationMinutes

	for cursor := hours.StartMinutes; cursor+step <= hours.EndMinutes; cursor += step {
		slot := Window{StartMinutes: cursor, EndMinutes: cursor + step}

		if hasBreak && slot.Overlaps(breakWindow) {
			continue
		}

		slots = append(slots, domain.Slot{
			StartTime:    types.Format12(slot.StartMinutes),
			EndTime:      types.Format12(slot.EndMinutes),
			StartMinutes: slot.StartMinutes,
			EndMinutes:   slot.EndMinutes,
		})
	}

	return slots
}

// BuildSlots возвращает времена начала слотов в формате "h:mm AM/PM"
func BuildSlots(settings *domain.BusinessHoursSettings) []string {
	slots := GenerateSlots(settings)

	starts := make([]string, len(slots))
	for i, slot := range slots {
		starts[i] = slot.StartTime
	}

	return starts
}

// BreakWindow возвращает перерыв в минутах
// Перерыв считается ненастроенным, если одна из границ пустая или не парсится
func BreakWindow(settings *domain.BusinessHoursSettings) (Window, bool) {
	if !settings.HasBreak() {
		return Window{}, false
	}

	start, ok := types.Parse24(settings.BreakStart)
	if !ok {
		return Window{}, false
	}

	end, ok := types.Parse24(settings.BreakEnd)
	if !ok {
		return Window{}, false
	}

	return Window{StartMinutes: start, EndMinutes: end}, true
}

// DayRange возвращает границы календарного дня [полночь, полночь следующего дня)
func DayRange(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}

func workingHours(settings *domain.BusinessHoursSettings) (Window, bool) {
	open, ok := types.Parse24(settings.OpenTime)
	if !ok {
		return Window{}, false
	}

	closeAt, ok := types.Parse24(settings.CloseTime)
	if !ok {
		return Window{}, false
	}

	return Window{StartMinutes: open, EndMinutes: closeAt}, true
}
