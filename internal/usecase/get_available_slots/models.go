package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	ServiceID domain.ServiceID
	Date      time.Time // Дата (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date      string           `json:"date"`
	ServiceID domain.ServiceID `json:"serviceId"`
	Slots     []Slot           `json:"slots"`
}

// Slot модель временного слота
type Slot struct {
	StartTime string `json:"startTime"` // "h:mm AM/PM"
	EndTime   string `json:"endTime"`   // "h:mm AM/PM"
	Available bool   `json:"available"`
}

func fromDomainSlots(slots []domain.AvailableSlot) []Slot {
	result := make([]Slot, len(slots))
	for i, slot := range slots {
		result[i] = Slot{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Available: slot.Available,
		}
	}
	return result
}
