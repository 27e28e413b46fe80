package domain

// Default business hours, used when the settings row is created on first read
const (
	SettingsKey                = "default"
	DefaultOpenTime            = "09:00"
	DefaultCloseTime           = "17:00"
	DefaultSlotDurationMinutes = 60
	DefaultBreakStart          = "13:00"
	DefaultBreakEnd            = "14:00"
)

// Business validation constants
const (
	MinSlotDurationMinutes = 15
	MinWorkingDay          = 0 // воскресенье
	MaxWorkingDay          = 6 // суббота
	MaxNotesLength         = 1000
	MaxServiceNameLength   = 200
)

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllStatuses список всех статусов записи
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
	StatusRescheduled,
	StatusCancelled,
	StatusCompleted,
}
