package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	FindSameDay(ctx context.Context, serviceID domain.ServiceID, date time.Time, excludeID *domain.AppointmentID) ([]*domain.Appointment, error)
}

// SettingsProvider источник текущих настроек рабочего времени
type SettingsProvider interface {
	GetOrCreateDefault(ctx context.Context) (*domain.BusinessHoursSettings, error)
}

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	GetByID(ctx context.Context, id domain.ServiceID) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
