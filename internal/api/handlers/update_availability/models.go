package update_availability

import (
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability/models"
)

// UpdateAvailabilityRequest HTTP request model
// Отсутствующие поля не меняются, пустые breakStartTime/breakEndTime убирают перерыв
type UpdateAvailabilityRequest struct {
	StartTime           *string `json:"startTime,omitempty"`
	EndTime             *string `json:"endTime,omitempty"`
	SlotDurationMinutes *int    `json:"slotDurationMinutes,omitempty"`
	WorkingDays         *[]int  `json:"workingDays,omitempty"`
	BreakStartTime      *string `json:"breakStartTime,omitempty"`
	BreakEndTime        *string `json:"breakEndTime,omitempty"`
}

// UpdateAvailabilityResponse HTTP response model
type UpdateAvailabilityResponse struct {
	Message      string                   `json:"message"`
	Availability *models.SettingsResponse `json:"availability"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateAvailabilityRequest) ToServiceRequest() *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		OpenTime:            r.StartTime,
		CloseTime:           r.EndTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
		WorkingDays:         r.WorkingDays,
		BreakStart:          r.BreakStartTime,
		BreakEnd:            r.BreakEndTime,
	}
}
