package list_services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListActive(ctx context.Context) (*models.ServiceListResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*models.ServiceListResponse)
	return resp, args.Error(1)
}

func (m *mockService) ListAll(ctx context.Context) (*models.ServiceListResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*models.ServiceListResponse)
	return resp, args.Error(1)
}

func list(names ...string) *models.ServiceListResponse {
	resp := &models.ServiceListResponse{Services: []models.ServiceResponse{}}
	for _, name := range names {
		resp.Services = append(resp.Services, models.ServiceResponse{ID: domain.NewServiceID(), Name: name, IsActive: true})
	}
	return resp
}

func TestHandle_PublicListsActive(t *testing.T) {
	svc := new(mockService)
	svc.On("ListActive", mock.Anything).Return(list("General Consultation"), nil).Once()

	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"General Consultation"`)
	svc.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestHandle_AdminListsAll(t *testing.T) {
	svc := new(mockService)
	svc.On("ListAll", mock.Anything).Return(list("Salon Services", "Skin Care Session"), nil).Once()

	w := httptest.NewRecorder()
	NewAdminHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/services", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Skin Care Session"`)
	svc.AssertNotCalled(t, "ListActive", mock.Anything)
}

func TestHandle_Error(t *testing.T) {
	svc := new(mockService)
	svc.On("ListActive", mock.Anything).Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
