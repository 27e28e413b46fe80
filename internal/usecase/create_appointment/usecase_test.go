package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

var (
	monday = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
)

type mockAppointments struct {
	mock.Mock
}

func (m *mockAppointments) FindSameDay(ctx context.Context, serviceID domain.ServiceID, date time.Time, excludeID *domain.AppointmentID) ([]*domain.Appointment, error) {
	args := m.Called(ctx, serviceID, date, excludeID)
	appointments, _ := args.Get(0).([]*domain.Appointment)
	return appointments, args.Error(1)
}

func (m *mockAppointments) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	args := m.Called(ctx, appointment)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	return appointment, nil
}

type stubSettings struct {
	settings *domain.BusinessHoursSettings
}

func (s stubSettings) GetOrCreateDefault(context.Context) (*domain.BusinessHoursSettings, error) {
	return s.settings.Clone(), nil
}

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) GetByID(ctx context.Context, id domain.ServiceID) (*domain.Service, error) {
	args := m.Called(ctx, id)
	service, _ := args.Get(0).(*domain.Service)
	return service, args.Error(1)
}

func (m *mockCatalog) FindByName(ctx context.Context, name string) (*domain.Service, error) {
	args := m.Called(ctx, name)
	service, _ := args.Get(0).(*domain.Service)
	return service, args.Error(1)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) RecordAppointmentCreated() { m.Called() }
func (m *mockMetrics) RecordSlotRejected(reason string) { m.Called(reason) }
func (m *mockMetrics) RecordSlotConflict() { m.Called() }

// inlineTx выполняет функцию без реальной транзакции
type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	appointments *mockAppointments
	catalog      *mockCatalog
	metrics      *mockMetrics
	service      *domain.Service
	customer     domain.Actor
	useCase      *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		appointments: new(mockAppointments),
		catalog:      new(mockCatalog),
		metrics:      new(mockMetrics),
		service: &domain.Service{
			ID:              domain.NewServiceID(),
			Name:            "Business Coaching",
			DurationMinutes: 60,
			IsActive:        true,
		},
		customer: domain.Actor{
			UserID: domain.UserID{UUID: domain.NewAppointmentID().UUID},
			Role:   domain.RoleCustomer,
		},
	}

	f.catalog.On("GetByID", mock.Anything, f.service.ID).Return(f.service, nil).Maybe()

	f.useCase = NewUseCase(
		f.appointments,
		stubSettings{settings: domain.DefaultBusinessHoursSettings()},
		f.catalog,
		inlineTx{},
		f.metrics,
		logger.Nop(),
	)
	return f
}

func (f *fixture) request(date time.Time, start, end string) *Request {
	return &Request{
		Actor:     f.customer,
		ServiceID: &f.service.ID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
}

func existing(start, end string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:        domain.NewAppointmentID(),
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func TestExecute_CreatesPendingAppointment(t *testing.T) {
	f := newFixture()
	f.appointments.On("FindSameDay", mock.Anything, f.service.ID, monday, (*domain.AppointmentID)(nil)).
		Return([]*domain.Appointment{existing("11:00 AM", "12:00 PM", domain.StatusApproved)}, nil)
	f.appointments.On("Create", mock.Anything, mock.Anything).Return(nil, nil)
	f.metrics.On("RecordAppointmentCreated").Once()

	resp, err := f.useCase.Execute(context.Background(), f.request(monday, "10:00 AM", "11:00 AM"))

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, f.customer.UserID, resp.CustomerID)
	assert.Equal(t, f.service.ID, resp.ServiceID)
	assert.Equal(t, "2024-01-01", resp.AppointmentDate)
	f.metrics.AssertExpectations(t)
}

func TestExecute_OverlapIsConflict(t *testing.T) {
	f := newFixture()
	f.appointments.On("FindSameDay", mock.Anything, f.service.ID, monday, (*domain.AppointmentID)(nil)).
		Return([]*domain.Appointment{existing("10:30 AM", "11:30 AM", domain.StatusPending)}, nil)
	f.metrics.On("RecordSlotConflict").Once()

	_, err := f.useCase.Execute(context.Background(), f.request(monday, "10:00 AM", "11:00 AM"))

	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	f.appointments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.metrics.AssertExpectations(t)
}

func TestExecute_UniqueViolationIsConflict(t *testing.T) {
	f := newFixture()
	f.appointments.On("FindSameDay", mock.Anything, f.service.ID, monday, (*domain.AppointmentID)(nil)).
		Return([]*domain.Appointment{}, nil)
	f.appointments.On("Create", mock.Anything, mock.Anything).Return(nil, appointmentRepo.ErrSlotAlreadyBooked)
	f.metrics.On("RecordSlotConflict").Once()

	_, err := f.useCase.Execute(context.Background(), f.request(monday, "10:00 AM", "11:00 AM"))

	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestExecute_CorruptStoredTimesAreSkipped(t *testing.T) {
	f := newFixture()
	f.appointments.On("FindSameDay", mock.Anything, f.service.ID, monday, (*domain.AppointmentID)(nil)).
		Return([]*domain.Appointment{existing("ten", "eleven", domain.StatusApproved)}, nil)
	f.appointments.On("Create", mock.Anything, mock.Anything).Return(nil, nil)
	f.metrics.On("RecordAppointmentCreated").Once()

	_, err := f.useCase.Execute(context.Background(), f.request(monday, "10:00 AM", "11:00 AM"))

	assert.NoError(t, err)
}

func TestExecute_SlotRejected(t *testing.T) {
	tests := []struct {
		name    string
		date    time.Time
		start   string
		end     string
		reason  scheduling.Reason
		message string
	}{
		{"break", monday, "1:00 PM", "2:00 PM", scheduling.ReasonOverlapsBreak, scheduling.MsgOverlapsBreak},
		{"format wins over working day", sunday, "10am", "11am", scheduling.ReasonInvalidFormat, scheduling.MsgInvalidFormat},
		{"non working day", sunday, "10:00 AM", "11:00 AM", scheduling.ReasonOutsideWorkDay, scheduling.MsgOutsideWorkingDay},
		{"outside hours", monday, "8:00 AM", "9:00 AM", scheduling.ReasonOutsideHours, scheduling.MsgOutsideHours},
		{"not aligned", monday, "10:30 AM", "11:30 AM", scheduling.ReasonNotAvailableSlot, scheduling.MsgNotAvailableSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.metrics.On("RecordSlotRejected", string(tt.reason)).Once()

			_, err := f.useCase.Execute(context.Background(), f.request(tt.date, tt.start, tt.end))

			require.ErrorIs(t, err, ErrInvalidSlot)
			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.message, validationErr.Message)
			f.appointments.AssertNotCalled(t, "FindSameDay", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			f.metrics.AssertExpectations(t)
		})
	}
}

func TestExecute_RequiredFields(t *testing.T) {
	f := newFixture()
	req := f.request(monday, "10:00 AM", "")

	_, err := f.useCase.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidInput)
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, msgRequiredFields, validationErr.Message)
}

func TestExecute_ServiceByNameNotFound(t *testing.T) {
	f := newFixture()
	f.catalog.On("FindByName", mock.Anything, "Yoga").Return(nil, catalog.ErrServiceNotFound)

	req := f.request(monday, "10:00 AM", "11:00 AM")
	req.ServiceID = nil
	req.ServiceName = " Yoga "

	_, err := f.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveService(t *testing.T) {
	f := newFixture()
	f.service.IsActive = false

	_, err := f.useCase.Execute(context.Background(), f.request(monday, "10:00 AM", "11:00 AM"))

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_AdminBooksForCustomer(t *testing.T) {
	f := newFixture()
	customerID := f.customer.UserID
	admin := domain.Actor{UserID: domain.UserID{UUID: domain.NewAppointmentID().UUID}, Role: domain.RoleAdmin}

	f.appointments.On("FindSameDay", mock.Anything, f.service.ID, monday, (*domain.AppointmentID)(nil)).
		Return([]*domain.Appointment{}, nil)
	f.appointments.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Appointment) bool {
		return a.CustomerID == customerID
	})).Return(nil, nil)
	f.metrics.On("RecordAppointmentCreated").Once()

	req := f.request(monday, "2:00 PM", "3:00 PM")
	req.Actor = admin
	req.CustomerID = &customerID

	resp, err := f.useCase.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, customerID, resp.CustomerID)
}

func TestExecute_CustomerCannotBookForSomeoneElse(t *testing.T) {
	f := newFixture()
	other := domain.UserID{UUID: domain.NewAppointmentID().UUID}

	f.appointments.On("FindSameDay", mock.Anything, f.service.ID, monday, (*domain.AppointmentID)(nil)).
		Return([]*domain.Appointment{}, nil)
	f.appointments.On("Create", mock.Anything, mock.Anything).Return(nil, nil)
	f.metrics.On("RecordAppointmentCreated").Once()

	req := f.request(monday, "2:00 PM", "3:00 PM")
	req.CustomerID = &other

	resp, err := f.useCase.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, f.customer.UserID, resp.CustomerID)
}
