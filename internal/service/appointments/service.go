package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// Service сервис чтения записей с учетом прав доступа
type Service struct {
	repo   AppointmentRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(repo AppointmentRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID получает запись по ID
// Клиент видит только свои записи, администратор - любые
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id domain.AppointmentID) (*models.AppointmentResponse, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !actor.CanAccess(appointment) {
		s.logger.Warn("GetByID: user=%s has no access to appointment id=%s", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAppointment(appointment), nil
}

// List получает записи по фильтру
// Для клиента фильтр по клиенту всегда принудительно равен его ID
func (s *Service) List(ctx context.Context, actor domain.Actor, filter domain.AppointmentsFilter) (*models.AppointmentListResponse, error) {
	if !actor.IsAdmin() {
		customerID := actor.UserID
		filter.CustomerID = &customerID
	}

	appointments, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%s: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d appointments for user=%s (role=%s)", len(appointments), actor.UserID, actor.Role)
	return models.FromDomainAppointmentList(appointments), nil
}
