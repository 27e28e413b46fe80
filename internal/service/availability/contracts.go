package availability

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек рабочего времени
type SettingsRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.BusinessHoursSettings, error)
	CreateIfNotExists(ctx context.Context, settings *domain.BusinessHoursSettings) (bool, error)
	Update(ctx context.Context, settings *domain.BusinessHoursSettings) (*domain.BusinessHoursSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
