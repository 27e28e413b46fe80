package catalog

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.Service, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id domain.ServiceID) (*domain.Service, error)
	FindByName(ctx context.Context, name string, excludeID *domain.ServiceID) (*domain.Service, error)
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	CreateMany(ctx context.Context, services []*domain.Service) error
	Update(ctx context.Context, service *domain.Service) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
