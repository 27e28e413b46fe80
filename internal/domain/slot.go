package domain

// Slot represents a bookable interval generated from business hours
type Slot struct {
	StartTime    string // "h:mm AM/PM"
	EndTime      string // "h:mm AM/PM"
	StartMinutes int
	EndMinutes   int
}

// DurationMinutes returns slot length in minutes
func (s Slot) DurationMinutes() int {
	return s.EndMinutes - s.StartMinutes
}

// AvailableSlot is a slot for a concrete service and date
type AvailableSlot struct {
	Slot
	Available bool // false, если слот пересекается с активной записью на эту услугу
}
