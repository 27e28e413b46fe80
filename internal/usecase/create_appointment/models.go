package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// Request модель запроса на создание записи
type Request struct {
	Actor       domain.Actor      // Кто создает запись
	ServiceID   *domain.ServiceID // ID услуги (приоритетнее ServiceName)
	ServiceName string            // Название услуги, ищется без учета регистра
	Date        time.Time         // Календарный день записи
	StartTime   string            // "h:mm AM/PM"
	EndTime     string            // "h:mm AM/PM"
	Notes       *string           // Заметки (опционально)
	CustomerID  *domain.UserID    // Клиент, за которого записывает администратор
}

// Response модель ответа с созданной записью
type Response = models.AppointmentResponse
