package domain

import "time"

// Service represents a bookable service from the catalog
type Service struct {
	ID              ServiceID
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
	IsActive        bool
	CreatedBy       *UserID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DefaultServices каталог, которым заполняется пустая база
func DefaultServices() []*Service {
	return []*Service{
		{
			Name:            "General Consultation",
			Description:     "Professional consultation with experienced staff",
			DurationMinutes: 30,
			Price:           30,
			IsActive:        true,
		},
		{
			Name:            "Skin Care Session",
			Description:     "Refreshing skin treatment for glowing results",
			DurationMinutes: 45,
			Price:           45,
			IsActive:        true,
		},
		{
			Name:            "Business Coaching",
			Description:     "One on one growth and strategy guidance",
			DurationMinutes: 60,
			Price:           60,
			IsActive:        true,
		},
		{
			Name:            "Salon Services",
			Description:     "Premium hair and beauty services",
			DurationMinutes: 90,
			Price:           75,
			IsActive:        true,
		},
	}
}
