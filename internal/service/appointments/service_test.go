package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByID(ctx context.Context, id domain.AppointmentID) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	appointment, _ := args.Get(0).(*domain.Appointment)
	return appointment, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	args := m.Called(ctx, filter)
	appointments, _ := args.Get(0).([]*domain.Appointment)
	return appointments, args.Error(1)
}

func newUserID() domain.UserID {
	return domain.UserID{UUID: domain.NewAppointmentID().UUID}
}

func TestGetByID_AccessRules(t *testing.T) {
	owner := domain.Actor{UserID: newUserID(), Role: domain.RoleCustomer}
	stranger := domain.Actor{UserID: newUserID(), Role: domain.RoleCustomer}
	admin := domain.Actor{UserID: newUserID(), Role: domain.RoleAdmin}

	appointment := &domain.Appointment{
		ID:         domain.NewAppointmentID(),
		CustomerID: owner.UserID,
		StartTime:  "10:00 AM",
		EndTime:    "11:00 AM",
		Status:     domain.StatusPending,
	}

	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, appointment.ID).Return(appointment, nil)
	service := NewService(repo, logger.Nop())

	resp, err := service.GetByID(context.Background(), owner, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, appointment.ID, resp.ID)

	_, err = service.GetByID(context.Background(), admin, appointment.ID)
	require.NoError(t, err)

	_, err = service.GetByID(context.Background(), stranger, appointment.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := new(mockRepo)
	id := domain.NewAppointmentID()
	repo.On("GetByID", mock.Anything, id).Return(nil, appointmentRepo.ErrAppointmentNotFound)

	_, err := NewService(repo, logger.Nop()).GetByID(context.Background(), domain.Actor{Role: domain.RoleAdmin}, id)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_CustomerIsScopedToOwnAppointments(t *testing.T) {
	customer := domain.Actor{UserID: newUserID(), Role: domain.RoleCustomer}
	other := newUserID()

	repo := new(mockRepo)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.AppointmentsFilter) bool {
		return f.CustomerID != nil && *f.CustomerID == customer.UserID
	})).Return([]*domain.Appointment{}, nil).Once()

	resp, err := NewService(repo, logger.Nop()).List(context.Background(), customer, domain.AppointmentsFilter{CustomerID: &other})

	require.NoError(t, err)
	assert.Empty(t, resp.Appointments)
	repo.AssertExpectations(t)
}

func TestList_AdminKeepsFilter(t *testing.T) {
	admin := domain.Actor{UserID: newUserID(), Role: domain.RoleAdmin}

	repo := new(mockRepo)
	repo.On("List", mock.Anything, domain.AppointmentsFilter{}).Return([]*domain.Appointment{
		{ID: domain.NewAppointmentID(), Status: domain.StatusApproved},
	}, nil).Once()

	resp, err := NewService(repo, logger.Nop()).List(context.Background(), admin, domain.AppointmentsFilter{})

	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)
	repo.AssertExpectations(t)
}
