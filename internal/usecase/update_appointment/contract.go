package update_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id domain.AppointmentID) (*domain.Appointment, error)
	FindSameDay(ctx context.Context, serviceID domain.ServiceID, date time.Time, excludeID *domain.AppointmentID) ([]*domain.Appointment, error)
	Update(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// SettingsProvider источник текущих настроек рабочего времени
type SettingsProvider interface {
	GetOrCreateDefault(ctx context.Context) (*domain.BusinessHoursSettings, error)
}

// ServiceCatalog проверка существования услуги при смене услуги
type ServiceCatalog interface {
	GetByID(ctx context.Context, id domain.ServiceID) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder бизнес-метрики записи
type MetricsRecorder interface {
	RecordSlotRejected(reason string)
	RecordSlotConflict()
}

type nopMetrics struct{}

func (nopMetrics) RecordSlotRejected(string) {}
func (nopMetrics) RecordSlotConflict() {}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
