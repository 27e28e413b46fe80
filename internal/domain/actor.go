package domain

// Role of an authenticated user
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Actor is the authenticated user performing an operation
type Actor struct {
	UserID UserID
	Role   Role
}

// IsAdmin returns true for administrators
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanAccess returns true if the actor may read or modify the appointment
func (a Actor) CanAccess(appointment *Appointment) bool {
	return a.IsAdmin() || appointment.BelongsTo(a.UserID)
}
