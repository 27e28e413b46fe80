package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	settings        SettingsProvider
	catalog         ServiceCatalog
	txManager       TransactionManager
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	settings SettingsProvider,
	catalog ServiceCatalog,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &UseCase{
		appointmentRepo: appointmentRepo,
		settings:        settings,
		catalog:         catalog,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
//
// Порядок: проверка запроса → услуга → настройки → валидация окна →
// (в сериализуемой транзакции) поиск конфликтов на тот же день и услугу → создание.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%s, role=%s, service=%v, serviceName=%q, date=%s, time=%s-%s",
		req.Actor.UserID, req.Actor.Role, req.ServiceID, req.ServiceName,
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.resolveService(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Получаем настройки рабочего времени
	settings, err := uc.settings.GetOrCreateDefault(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 4. Проверяем окно по настройкам
	validation := scheduling.ValidateSlot(settings, req.Date, req.StartTime, req.EndTime)
	if !validation.Valid {
		uc.logger.Warn("CreateAppointment: slot rejected (%s): %s", validation.Reason, validation.Message)
		uc.metrics.RecordSlotRejected(string(validation.Reason))
		return nil, domain.NewValidationError(ErrInvalidSlot, validation.Message)
	}

	customerID := resolveCustomer(req)
	var result *domain.Appointment

	// 5. Проверка конфликтов и создание в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.appointmentRepo.FindSameDay(txCtx, service.ID, req.Date, nil)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get same-day appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
		}

		conflict := scheduling.DetectConflict(validation.Window(), existing, nil)
		for _, corrupt := range conflict.Unparsable {
			uc.logger.Warn("CreateAppointment: skipping appointment id=%s with unparsable time %q-%q",
				corrupt.ID, corrupt.StartTime, corrupt.EndTime)
		}
		if conflict.HasConflict() {
			uc.logger.Warn("CreateAppointment: slot %s-%s conflicts with appointment id=%s",
				req.StartTime, req.EndTime, conflict.Conflict.ID)
			return ErrSlotAlreadyBooked
		}

		appointment := &domain.Appointment{
			ID:         domain.NewAppointmentID(),
			CustomerID: customerID,
			ServiceID:  service.ID,
			Date:       dateOnly(req.Date),
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			Status:     domain.StatusPending,
			Notes:      req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotAlreadyBooked) {
				uc.logger.Warn("CreateAppointment: slot %s taken concurrently", req.StartTime)
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotAlreadyBooked) {
			uc.metrics.RecordSlotConflict()
		}
		return nil, err
	}

	uc.metrics.RecordAppointmentCreated()
	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return models.FromDomainAppointment(result), nil
}

// resolveService ищет услугу по ID, а если его нет - по названию
func (uc *UseCase) resolveService(ctx context.Context, req *Request) (*domain.Service, error) {
	var (
		service *domain.Service
		err     error
	)

	if req.ServiceID != nil {
		service, err = uc.catalog.GetByID(ctx, *req.ServiceID)
	} else {
		service, err = uc.catalog.FindByName(ctx, strings.TrimSpace(req.ServiceName))
	}

	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%v name=%q not found", req.ServiceID, req.ServiceName)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service: %v", err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%s is inactive", service.ID)
		return nil, ErrServiceNotFound
	}

	return service, nil
}

func dateOnly(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
