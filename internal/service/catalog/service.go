package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

const (
	msgNameAndDurationRequired = "Name and durationMinutes are required."
	msgNameTooLong             = "name must be at most 200 characters."
	msgInvalidDuration         = "durationMinutes must be a positive integer."
	msgInvalidPrice            = "price must not be negative."
)

// Service сервис каталога услуг
type Service struct {
	repo   ServiceRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo ServiceRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListActive возвращает активные услуги
// Пустой каталог заполняется услугами по умолчанию
func (s *Service) ListActive(ctx context.Context) (*models.ServiceListResponse, error) {
	return s.list(ctx, true)
}

// ListAll возвращает все услуги, включая неактивные
func (s *Service) ListAll(ctx context.Context) (*models.ServiceListResponse, error) {
	return s.list(ctx, false)
}

func (s *Service) list(ctx context.Context, onlyActive bool) (*models.ServiceListResponse, error) {
	if err := s.ensureDefaults(ctx); err != nil {
		return nil, err
	}

	services, err := s.repo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error (onlyActive=%t): %v", onlyActive, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// ensureDefaults заполняет пустой каталог услугами по умолчанию
func (s *Service) ensureDefaults(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("ensureDefaults: failed to count services: %v", err)
		return fmt.Errorf("%w: ensureDefaults - count: %v", ErrInternal, err)
	}
	if count > 0 {
		return nil
	}

	defaults := domain.DefaultServices()
	for _, service := range defaults {
		service.ID = domain.NewServiceID()
	}

	if err := s.repo.CreateMany(ctx, defaults); err != nil {
		s.logger.Error("ensureDefaults: failed to seed services: %v", err)
		return fmt.Errorf("%w: ensureDefaults - seed: %v", ErrInternal, err)
	}

	s.logger.Info("ensureDefaults: seeded %d default services", len(defaults))
	return nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id domain.ServiceID) (*domain.Service, error) {
	service, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return service, nil
}

// FindByName ищет услугу по названию без учета регистра и крайних пробелов
func (s *Service) FindByName(ctx context.Context, name string) (*domain.Service, error) {
	service, err := s.repo.FindByName(ctx, strings.TrimSpace(name), nil)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("FindByName: service %q not found", name)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("FindByName: repository error for service %q: %v", name, err)
		return nil, fmt.Errorf("%w: FindByName - repository error: %v", ErrInternal, err)
	}

	return service, nil
}

// Create создает услугу
// Название уникально без учета регистра
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	name := strings.TrimSpace(req.Name)
	s.logger.Info("Create: creating service %q by user=%s", name, req.CreatedBy)

	if name == "" || req.DurationMinutes == 0 {
		return nil, invalid(msgNameAndDurationRequired)
	}
	if err := validateFields(name, req.DurationMinutes, req.Price); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if err := s.checkNameIsFree(ctx, name, nil); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	createdBy := req.CreatedBy
	service := &domain.Service{
		ID:              domain.NewServiceID(),
		Name:            name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		IsActive:        isActive,
		CreatedBy:       &createdBy,
	}

	created, err := s.repo.Create(ctx, service)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrDuplicateName) {
			s.logger.Warn("Create: service %q already exists", name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%s", created.ID)
	return models.FromDomainService(created), nil
}

// Update частично обновляет услугу
func (s *Service) Update(ctx context.Context, id domain.ServiceID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%s", id)

	service, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != "" && !strings.EqualFold(name, service.Name) {
			if err := s.checkNameIsFree(ctx, name, &id); err != nil {
				return nil, err
			}
		}
		if name != "" {
			service.Name = name
		}
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		service.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := validateFields(service.Name, service.DurationMinutes, service.Price); err != nil {
		s.logger.Warn("Update: validation failed for service id=%s: %v", id, err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, service)
	if err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrServiceNotFound):
			return nil, ErrServiceNotFound
		case errors.Is(err, catalogRepo.ErrDuplicateName):
			return nil, ErrDuplicateName
		}
		s.logger.Error("Update: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%s", id)
	return models.FromDomainService(updated), nil
}

func (s *Service) checkNameIsFree(ctx context.Context, name string, excludeID *domain.ServiceID) error {
	existing, err := s.repo.FindByName(ctx, name, excludeID)
	if err != nil && !errors.Is(err, catalogRepo.ErrServiceNotFound) {
		s.logger.Error("checkNameIsFree: repository error for %q: %v", name, err)
		return fmt.Errorf("%w: checkNameIsFree - repository error: %v", ErrInternal, err)
	}
	if existing != nil {
		s.logger.Warn("checkNameIsFree: service %q already exists (id=%s)", name, existing.ID)
		return ErrDuplicateName
	}
	return nil
}

func validateFields(name string, durationMinutes int, price float64) error {
	if len([]rune(name)) > domain.MaxServiceNameLength {
		return invalid(msgNameTooLong)
	}
	if durationMinutes <= 0 {
		return invalid(msgInvalidDuration)
	}
	if price < 0 {
		return invalid(msgInvalidPrice)
	}
	return nil
}

func invalid(message string) error {
	return domain.NewValidationError(ErrInvalidInput, message)
}
