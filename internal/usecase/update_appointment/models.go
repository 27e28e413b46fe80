package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// Request модель запроса на изменение записи
// nil - поле не меняется
type Request struct {
	Actor         domain.Actor
	AppointmentID domain.AppointmentID

	// Только для администратора, у клиента игнорируются
	CustomerID *domain.UserID
	ServiceID  *domain.ServiceID

	Date      *time.Time
	StartTime *string // "h:mm AM/PM"
	EndTime   *string // "h:mm AM/PM"
	Status    *domain.AppointmentStatus
	Notes     *string
}

// Response модель ответа с измененной записью
type Response = models.AppointmentResponse
