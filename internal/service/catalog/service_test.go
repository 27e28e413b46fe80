package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) List(ctx context.Context, onlyActive bool) ([]*domain.Service, error) {
	args := m.Called(ctx, onlyActive)
	services, _ := args.Get(0).([]*domain.Service)
	return services, args.Error(1)
}

func (m *mockRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id domain.ServiceID) (*domain.Service, error) {
	args := m.Called(ctx, id)
	service, _ := args.Get(0).(*domain.Service)
	return service, args.Error(1)
}

func (m *mockRepo) FindByName(ctx context.Context, name string, excludeID *domain.ServiceID) (*domain.Service, error) {
	args := m.Called(ctx, name, excludeID)
	service, _ := args.Get(0).(*domain.Service)
	return service, args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	args := m.Called(ctx, service)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	return service, nil
}

func (m *mockRepo) CreateMany(ctx context.Context, services []*domain.Service) error {
	args := m.Called(ctx, services)
	return args.Error(0)
}

func (m *mockRepo) Update(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	args := m.Called(ctx, service)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	return service, nil
}

func TestListActive_SeedsEmptyCatalog(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Count", mock.Anything).Return(0, nil)
	repo.On("CreateMany", mock.Anything, mock.MatchedBy(func(services []*domain.Service) bool {
		if len(services) != 4 {
			return false
		}
		for _, s := range services {
			if s.ID.UUID == [16]byte{} || !s.IsActive {
				return false
			}
		}
		return services[0].Name == "General Consultation" && services[3].DurationMinutes == 90
	})).Return(nil).Once()
	repo.On("List", mock.Anything, true).Return(domain.DefaultServices(), nil)

	resp, err := NewService(repo, logger.Nop()).ListActive(context.Background())

	require.NoError(t, err)
	assert.Len(t, resp.Services, 4)
	repo.AssertExpectations(t)
}

func TestListAll_DoesNotSeedNonEmptyCatalog(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Count", mock.Anything).Return(2, nil)
	repo.On("List", mock.Anything, false).Return([]*domain.Service{}, nil)

	resp, err := NewService(repo, logger.Nop()).ListAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, resp.Services)
	repo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
}

func TestCreate_Success(t *testing.T) {
	repo := new(mockRepo)
	repo.On("FindByName", mock.Anything, "Massage", (*domain.ServiceID)(nil)).Return(nil, catalogRepo.ErrServiceNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, nil)

	admin := domain.UserID{UUID: domain.NewServiceID().UUID}
	resp, err := NewService(repo, logger.Nop()).Create(context.Background(), &models.CreateServiceRequest{
		Name:            "  Massage ",
		DurationMinutes: 45,
		Price:           50,
		CreatedBy:       admin,
	})

	require.NoError(t, err)
	assert.Equal(t, "Massage", resp.Name)
	assert.True(t, resp.IsActive)
}

func TestCreate_DuplicateName(t *testing.T) {
	repo := new(mockRepo)
	existing := &domain.Service{ID: domain.NewServiceID(), Name: "Massage"}
	repo.On("FindByName", mock.Anything, "MASSAGE", (*domain.ServiceID)(nil)).Return(existing, nil)

	_, err := NewService(repo, logger.Nop()).Create(context.Background(), &models.CreateServiceRequest{
		Name:            "MASSAGE",
		DurationMinutes: 30,
	})

	assert.ErrorIs(t, err, ErrDuplicateName)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_RequiresNameAndDuration(t *testing.T) {
	repo := new(mockRepo)

	_, err := NewService(repo, logger.Nop()).Create(context.Background(), &models.CreateServiceRequest{Name: "Massage"})

	require.ErrorIs(t, err, ErrInvalidInput)
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, msgNameAndDurationRequired, validationErr.Message)
}

func TestUpdate_RenameChecksOtherServices(t *testing.T) {
	repo := new(mockRepo)
	id := domain.NewServiceID()
	current := &domain.Service{ID: id, Name: "Massage", DurationMinutes: 30, IsActive: true}
	repo.On("GetByID", mock.Anything, id).Return(current, nil)
	repo.On("FindByName", mock.Anything, "Deep Massage", &id).Return(nil, catalogRepo.ErrServiceNotFound)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil, nil)

	resp, err := NewService(repo, logger.Nop()).Update(context.Background(), id, &models.UpdateServiceRequest{
		Name:     ptr.Ptr("Deep Massage"),
		IsActive: ptr.Ptr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, "Deep Massage", resp.Name)
	assert.False(t, resp.IsActive)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(mockRepo)
	id := domain.NewServiceID()
	repo.On("GetByID", mock.Anything, id).Return(nil, catalogRepo.ErrServiceNotFound)

	_, err := NewService(repo, logger.Nop()).Update(context.Background(), id, &models.UpdateServiceRequest{})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}
