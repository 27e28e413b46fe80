package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByKey(ctx context.Context, key string) (*domain.BusinessHoursSettings, error) {
	args := m.Called(ctx, key)
	settings, _ := args.Get(0).(*domain.BusinessHoursSettings)
	return settings, args.Error(1)
}

func (m *mockRepo) CreateIfNotExists(ctx context.Context, settings *domain.BusinessHoursSettings) (bool, error) {
	args := m.Called(ctx, settings)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, settings *domain.BusinessHoursSettings) (*domain.BusinessHoursSettings, error) {
	args := m.Called(ctx, settings)
	if fn, ok := args.Get(0).(func(context.Context, *domain.BusinessHoursSettings) *domain.BusinessHoursSettings); ok {
		return fn(ctx, settings), args.Error(1)
	}
	updated, _ := args.Get(0).(*domain.BusinessHoursSettings)
	return updated, args.Error(1)
}

func stored() *domain.BusinessHoursSettings {
	settings := domain.DefaultBusinessHoursSettings()
	settings.ID = 1
	return settings
}

func TestGetOrCreateDefault_Existing(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetByKey", mock.Anything, domain.SettingsKey).Return(stored(), nil).Once()

	settings, err := NewService(repo, logger.Nop()).GetOrCreateDefault(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), settings.ID)
	repo.AssertNotCalled(t, "CreateIfNotExists", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestGetOrCreateDefault_CreatesOnce(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetByKey", mock.Anything, domain.SettingsKey).Return(nil, settingsRepo.ErrSettingsNotFound).Once()
	repo.On("CreateIfNotExists", mock.Anything, mock.MatchedBy(func(s *domain.BusinessHoursSettings) bool {
		return s.Key == domain.SettingsKey &&
			s.OpenTime == "09:00" && s.CloseTime == "17:00" &&
			s.SlotDurationMinutes == 60 &&
			s.BreakStart == "13:00" && s.BreakEnd == "14:00"
	})).Return(true, nil).Once()
	repo.On("GetByKey", mock.Anything, domain.SettingsKey).Return(stored(), nil).Once()

	settings, err := NewService(repo, logger.Nop()).GetOrCreateDefault(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, settings.WorkingDays)
	repo.AssertExpectations(t)
}

func TestGetOrCreateDefault_ConcurrentCreatorWins(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetByKey", mock.Anything, domain.SettingsKey).Return(nil, settingsRepo.ErrSettingsNotFound).Once()
	repo.On("CreateIfNotExists", mock.Anything, mock.Anything).Return(false, nil).Once()
	repo.On("GetByKey", mock.Anything, domain.SettingsKey).Return(stored(), nil).Once()

	settings, err := NewService(repo, logger.Nop()).GetOrCreateDefault(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored(), settings)
	repo.AssertExpectations(t)
}

func TestGetOrCreateDefault_RepositoryError(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetByKey", mock.Anything, domain.SettingsKey).Return(nil, errors.New("connection refused"))

	_, err := NewService(repo, logger.Nop()).GetOrCreateDefault(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestGet_IncludesSlots(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetByKey", mock.Anything, domain.SettingsKey).Return(stored(), nil)

	public, err := NewService(repo, logger.Nop()).Get(context.Background(), false)
	require.NoError(t, err)
	assert.Nil(t, public.ID)
	assert.Len(t, public.Slots, 7)
	assert.NotContains(t, public.Slots, "1:00 PM")

	admin, err := NewService(repo, logger.Nop()).Get(context.Background(), true)
	require.NoError(t, err)
	require.NotNil(t, admin.ID)
	assert.Equal(t, int64(1), *admin.ID)
}

func TestUpdate_PartialMerge(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetByKey", mock.Anything, domain.SettingsKey).Return(stored(), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(func(_ context.Context, s *domain.BusinessHoursSettings) *domain.BusinessHoursSettings {
		return s
	}, nil)

	resp, err := NewService(repo, logger.Nop()).Update(context.Background(), &models.UpdateSettingsRequest{
		SlotDurationMinutes: ptr.Ptr(30),
		WorkingDays:         ptr.Ptr([]int{5, 1, 1, 3}),
	})

	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.OpenTime)
	assert.Equal(t, 30, resp.SlotDurationMinutes)
	assert.Equal(t, []int{1, 3, 5}, resp.WorkingDays)
	assert.Equal(t, "13:00", resp.BreakStart)
}

func TestUpdate_ClearBreak(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetByKey", mock.Anything, domain.SettingsKey).Return(stored(), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(func(_ context.Context, s *domain.BusinessHoursSettings) *domain.BusinessHoursSettings {
		return s
	}, nil)

	resp, err := NewService(repo, logger.Nop()).Update(context.Background(), &models.UpdateSettingsRequest{
		BreakStart: ptr.Ptr(""),
		BreakEnd:   ptr.Ptr(""),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.BreakStart)
	assert.Len(t, resp.Slots, 8)
}

func TestUpdate_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.UpdateSettingsRequest
		message string
	}{
		{
			name:    "bad time format",
			req:     &models.UpdateSettingsRequest{OpenTime: ptr.Ptr("9am")},
			message: "startTime must be in HH:mm format.",
		},
		{
			name:    "bad break format",
			req:     &models.UpdateSettingsRequest{BreakEnd: ptr.Ptr("25:00")},
			message: "breakEndTime must be in HH:mm format.",
		},
		{
			name:    "short slot",
			req:     &models.UpdateSettingsRequest{SlotDurationMinutes: ptr.Ptr(10)},
			message: msgSlotDuration,
		},
		{
			name:    "working day out of range",
			req:     &models.UpdateSettingsRequest{WorkingDays: ptr.Ptr([]int{1, 7})},
			message: msgWorkingDays,
		},
		{
			name:    "open after close",
			req:     &models.UpdateSettingsRequest{OpenTime: ptr.Ptr("18:00")},
			message: msgOpenBeforeClose,
		},
		{
			name:    "empty open time",
			req:     &models.UpdateSettingsRequest{OpenTime: ptr.Ptr("")},
			message: "startTime must be in HH:mm format.",
		},
		{
			name:    "break outside hours",
			req:     &models.UpdateSettingsRequest{BreakStart: ptr.Ptr("16:30"), BreakEnd: ptr.Ptr("17:30")},
			message: msgBreakWithinHours,
		},
		{
			name:    "inverted break",
			req:     &models.UpdateSettingsRequest{BreakStart: ptr.Ptr("14:00"), BreakEnd: ptr.Ptr("13:00")},
			message: msgBreakWithinHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepo)
			repo.On("GetByKey", mock.Anything, domain.SettingsKey).Return(stored(), nil)

			_, err := NewService(repo, logger.Nop()).Update(context.Background(), tt.req)

			require.ErrorIs(t, err, ErrInvalidInput)
			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.message, validationErr.Message)
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}
