package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
)

// UseCase use case для получения слотов услуги на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	settings        SettingsProvider
	catalog         ServiceCatalog
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	settings SettingsProvider,
	catalog ServiceCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		settings:        settings,
		catalog:         catalog,
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
//
// Возвращает все слоты дня; слот недоступен, если пересекается
// с неотмененной записью на эту же услугу. В нерабочий день список пустой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s", req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("GetAvailableSlots: service id=%s is inactive", service.ID)
		return nil, ErrServiceNotFound
	}

	response := &Response{
		Date:      req.Date.Format(domain.DateFormat),
		ServiceID: service.ID,
		Slots:     []Slot{},
	}

	// 3. Получаем настройки рабочего времени
	settings, err := uc.settings.GetOrCreateDefault(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 4. Нерабочий день
	if !settings.IsWorkingDay(req.Date.Weekday()) {
		uc.logger.Info("GetAvailableSlots: %s is not a working day", response.Date)
		return response, nil
	}

	// 5. Записи на этот день
	existing, err := uc.appointmentRepo.FindSameDay(ctx, service.ID, req.Date, nil)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Помечаем занятые слоты
	response.Slots = fromDomainSlots(markAvailability(scheduling.GenerateSlots(settings), existing))

	uc.logger.Info("GetAvailableSlots: returned %d slots for service=%s on %s",
		len(response.Slots), service.ID, response.Date)

	return response, nil
}

func markAvailability(slots []domain.Slot, existing []*domain.Appointment) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, len(slots))
	for i, slot := range slots {
		window := scheduling.Window{StartMinutes: slot.StartMinutes, EndMinutes: slot.EndMinutes}
		result[i] = domain.AvailableSlot{
			Slot:      slot,
			Available: scheduling.FindConflict(window, existing, nil) == nil,
		}
	}
	return result
}
