package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
)

// UseCase use case для изменения записи (перенос, смена статуса, заметки)
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

// Execute выполняет use case изменения записи
//
// Если итоговая запись не отменена и занимает другой слот, окно заново проверяется
// по настройкам и на конфликты (без учета самой записи). Чтение, проверка и
// сохранение идут в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: appointment=%s, user=%s, role=%s",
		req.AppointmentID, req.Actor.UserID, req.Actor.Role)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// Новая услуга должна существовать
	if req.Actor.IsAdmin() && req.ServiceID != nil {
		if _, err := uc.catalog.GetByID(ctx, *req.ServiceID); err != nil {
			if errors.Is(err, catalog.ErrServiceNotFound) {
				uc.logger.Warn("UpdateAppointment: service id=%s not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get service id=%s: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
	}

	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%s not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get appointment id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %w", ErrInternal, err)
		}

		if err := checkPermissions(req, current); err != nil {
			uc.logger.Warn("UpdateAppointment: user=%s cannot update appointment id=%s: %v",
				req.Actor.UserID, current.ID, err)
			return err
		}

		next := applyChanges(current, req)

		if needsSlotCheck(current, next) {
			if err := uc.checkSlot(txCtx, next); err != nil {
				return err
			}
		}

		updated, err := uc.appointmentRepo.Update(txCtx, next)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotAlreadyBooked) {
				uc.logger.Warn("UpdateAppointment: slot %s taken concurrently", next.StartTime)
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%s: %v", current.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %w", ErrInternal, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotAlreadyBooked) {
			uc.metrics.RecordSlotConflict()
		}
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%s (status=%s, %s %s-%s)",
		result.ID, result.Status, result.Date.Format(domain.DateFormat), result.StartTime, result.EndTime)

	return models.FromDomainAppointment(result), nil
}

// checkSlot проверяет итоговое окно по настройкам и на пересечения с другими записями
func (uc *UseCase) checkSlot(ctx context.Context, next *domain.Appointment) error {
	settings, err := uc.settings.GetOrCreateDefault(ctx)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to get settings: %v", err)
		return fmt.Errorf("%w: failed to get settings: %w", ErrInternal, err)
	}

	validation := scheduling.ValidateSlot(settings, next.Date, next.StartTime, next.EndTime)
	if !validation.Valid {
		uc.logger.Warn("UpdateAppointment: slot rejected (%s): %s", validation.Reason, validation.Message)
		uc.metrics.RecordSlotRejected(string(validation.Reason))
		return domain.NewValidationError(ErrInvalidSlot, validation.Message)
	}

	existing, err := uc.appointmentRepo.FindSameDay(ctx, next.ServiceID, next.Date, &next.ID)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to get same-day appointments: %v", err)
		return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
	}

	conflict := scheduling.DetectConflict(validation.Window(), existing, &next.ID)
	for _, corrupt := range conflict.Unparsable {
		uc.logger.Warn("UpdateAppointment: skipping appointment id=%s with unparsable time %q-%q",
			corrupt.ID, corrupt.StartTime, corrupt.EndTime)
	}
	if conflict.HasConflict() {
		uc.logger.Warn("UpdateAppointment: slot %s-%s conflicts with appointment id=%s",
			next.StartTime, next.EndTime, conflict.Conflict.ID)
		return ErrSlotAlreadyBooked
	}

	return nil
}
