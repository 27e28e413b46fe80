package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

// UpdateSettingsRequest частичное обновление настроек
// nil - поле не меняется, пустая строка в полях перерыва убирает перерыв
type UpdateSettingsRequest struct {
	OpenTime            *string
	CloseTime           *string
	SlotDurationMinutes *int
	WorkingDays         *[]int
	BreakStart          *string
	BreakEnd            *string
}

// SettingsResponse настройки вместе со сгенерированными слотами
type SettingsResponse struct {
	ID                  *int64    `json:"id,omitempty"`
	OpenTime            string    `json:"startTime"`
	CloseTime           string    `json:"endTime"`
	SlotDurationMinutes int       `json:"slotDurationMinutes"`
	WorkingDays         []int     `json:"workingDays"`
	BreakStart          string    `json:"breakStartTime"`
	BreakEnd            string    `json:"breakEndTime"`
	Slots               []string  `json:"slots"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// FromDomainSettings конвертирует domain модель в DTO
// withID = true добавляет идентификатор строки настроек (для администратора)
func FromDomainSettings(s *domain.BusinessHoursSettings, withID bool) *SettingsResponse {
	if s == nil {
		return nil
	}

	resp := &SettingsResponse{
		OpenTime:            s.OpenTime,
		CloseTime:           s.CloseTime,
		SlotDurationMinutes: s.SlotDurationMinutes,
		WorkingDays:         append([]int{}, s.WorkingDays...),
		BreakStart:          s.BreakStart,
		BreakEnd:            s.BreakEnd,
		Slots:               scheduling.BuildSlots(s),
		UpdatedAt:           s.UpdatedAt,
	}
	if withID {
		id := s.ID
		resp.ID = &id
	}

	return resp
}
