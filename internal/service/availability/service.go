package availability

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	msgSlotDuration      = "slotDurationMinutes must be an integer >= 15."
	msgWorkingDays       = "workingDays must be an array with values between 0 and 6."
	msgOpenBeforeClose   = "startTime must be before endTime."
	msgBreakWithinHours  = "breakStartTime must be before breakEndTime and the break must be within working hours."
	msgTimeFormatPattern = "%s must be in HH:mm format."
)

// Service сервис настроек рабочего времени
type Service struct {
	repo   SettingsRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo SettingsRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetOrCreateDefault возвращает текущие настройки
// При первом обращении создает строку с настройками по умолчанию.
// Конкурентные первые обращения создают ровно одну строку и видят одинаковые значения.
func (s *Service) GetOrCreateDefault(ctx context.Context) (*domain.BusinessHoursSettings, error) {
	settings, err := s.repo.GetByKey(ctx, domain.SettingsKey)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Error("GetOrCreateDefault: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: GetOrCreateDefault - repository error: %v", ErrInternal, err)
	}

	created, err := s.repo.CreateIfNotExists(ctx, domain.DefaultBusinessHoursSettings())
	if err != nil {
		s.logger.Error("GetOrCreateDefault: failed to create default settings: %v", err)
		return nil, fmt.Errorf("%w: GetOrCreateDefault - create default: %v", ErrInternal, err)
	}
	if created {
		s.logger.Info("GetOrCreateDefault: default business hours settings created")
	}

	// Перечитываем: строку могла создать параллельная транзакция
	settings, err = s.repo.GetByKey(ctx, domain.SettingsKey)
	if err != nil {
		s.logger.Error("GetOrCreateDefault: failed to reread settings: %v", err)
		return nil, fmt.Errorf("%w: GetOrCreateDefault - reread settings: %v", ErrInternal, err)
	}

	return settings, nil
}

// Get возвращает настройки вместе со слотами
// withID = true для администратора
func (s *Service) Get(ctx context.Context, withID bool) (*models.SettingsResponse, error) {
	settings, err := s.GetOrCreateDefault(ctx)
	if err != nil {
		return nil, err
	}

	return models.FromDomainSettings(settings, withID), nil
}

// Update частично обновляет настройки
// Сначала проверяются переданные поля, затем итоговые настройки целиком
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating business hours settings")

	if err := validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	current, err := s.GetOrCreateDefault(ctx)
	if err != nil {
		return nil, err
	}

	merged := applyUpdate(current.Clone(), req)
	if err := validateMerged(merged); err != nil {
		s.logger.Warn("Update: merged settings rejected: %v", err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, merged)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings updated: %s-%s, slot=%dm, days=%v, break=%q-%q",
		updated.OpenTime, updated.CloseTime, updated.SlotDurationMinutes,
		updated.WorkingDays, updated.BreakStart, updated.BreakEnd)
	return models.FromDomainSettings(updated, true), nil
}

// validateUpdate проверяет только переданные поля
func validateUpdate(req *models.UpdateSettingsRequest) error {
	timeFields := []struct {
		name  string
		value *string
	}{
		{"startTime", req.OpenTime},
		{"endTime", req.CloseTime},
		{"breakStartTime", req.BreakStart},
		{"breakEndTime", req.BreakEnd},
	}

	for _, field := range timeFields {
		if field.value != nil && *field.value != "" && !types.IsTime24(*field.value) {
			return invalid(fmt.Sprintf(msgTimeFormatPattern, field.name))
		}
	}

	if req.SlotDurationMinutes != nil && *req.SlotDurationMinutes < domain.MinSlotDurationMinutes {
		return invalid(msgSlotDuration)
	}

	if req.WorkingDays != nil {
		for _, day := range *req.WorkingDays {
			if day < domain.MinWorkingDay || day > domain.MaxWorkingDay {
				return invalid(msgWorkingDays)
			}
		}
	}

	return nil
}

func applyUpdate(settings *domain.BusinessHoursSettings, req *models.UpdateSettingsRequest) *domain.BusinessHoursSettings {
	if req.OpenTime != nil {
		settings.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		settings.CloseTime = *req.CloseTime
	}
	if req.SlotDurationMinutes != nil {
		settings.SlotDurationMinutes = *req.SlotDurationMinutes
	}
	if req.WorkingDays != nil {
		days := append([]int{}, *req.WorkingDays...)
		slices.Sort(days)
		settings.WorkingDays = slices.Compact(days)
	}
	if req.BreakStart != nil {
		settings.BreakStart = *req.BreakStart
	}
	if req.BreakEnd != nil {
		settings.BreakEnd = *req.BreakEnd
	}
	return settings
}

// validateMerged проверяет инварианты итоговых настроек
func validateMerged(settings *domain.BusinessHoursSettings) error {
	open, ok := types.Parse24(settings.OpenTime)
	if !ok {
		return invalid(fmt.Sprintf(msgTimeFormatPattern, "startTime"))
	}

	closeAt, ok := types.Parse24(settings.CloseTime)
	if !ok {
		return invalid(fmt.Sprintf(msgTimeFormatPattern, "endTime"))
	}

	if open >= closeAt {
		return invalid(msgOpenBeforeClose)
	}

	if !settings.HasBreak() {
		return nil
	}

	breakStart, _ := types.Parse24(settings.BreakStart)
	breakEnd, _ := types.Parse24(settings.BreakEnd)
	if breakStart >= breakEnd || breakStart < open || breakEnd > closeAt {
		return invalid(msgBreakWithinHours)
	}

	return nil
}

func invalid(message string) error {
	return domain.NewValidationError(ErrInvalidInput, message)
}
