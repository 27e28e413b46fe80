package domain

import "time"

// BusinessHoursSettings is the single business-wide availability configuration.
// Times are stored as 24-hour "HH:mm" strings. An empty BreakStart or BreakEnd
// means no break is configured.
type BusinessHoursSettings struct {
	ID                  int64
	Key                 string
	OpenTime            string
	CloseTime           string
	SlotDurationMinutes int
	WorkingDays         []int // 0 = воскресенье ... 6 = суббота
	BreakStart          string
	BreakEnd            string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultBusinessHoursSettings returns the settings created on first read
func DefaultBusinessHoursSettings() *BusinessHoursSettings {
	return &BusinessHoursSettings{
		Key:                 SettingsKey,
		OpenTime:            DefaultOpenTime,
		CloseTime:           DefaultCloseTime,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		WorkingDays:         []int{1, 2, 3, 4, 5, 6},
		BreakStart:          DefaultBreakStart,
		BreakEnd:            DefaultBreakEnd,
	}
}

// HasBreak returns true if both break bounds are configured
func (s *BusinessHoursSettings) HasBreak() bool {
	return s.BreakStart != "" && s.BreakEnd != ""
}

// IsWorkingDay returns true if bookings are allowed on the weekday
func (s *BusinessHoursSettings) IsWorkingDay(day time.Weekday) bool {
	for _, d := range s.WorkingDays {
		if d == int(day) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the settings
func (s *BusinessHoursSettings) Clone() *BusinessHoursSettings {
	clone := *s
	clone.WorkingDays = append([]int(nil), s.WorkingDays...)
	return &clone
}
