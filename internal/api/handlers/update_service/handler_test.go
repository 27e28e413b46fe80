package update_service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Update(ctx context.Context, id domain.ServiceID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*models.ServiceResponse)
	return resp, args.Error(1)
}

func serve(svc *mockService, id, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/services/{serviceId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPut)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/services/"+id, strings.NewReader(body)))
	return w
}

func TestHandle_PartialUpdate(t *testing.T) {
	id := domain.NewServiceID()
	svc := new(mockService)
	svc.On("Update", mock.Anything, id, mock.MatchedBy(func(req *models.UpdateServiceRequest) bool {
		return req.IsActive != nil && !*req.IsActive && req.Name == nil && req.DurationMinutes == nil
	})).Return(&models.ServiceResponse{ID: id, Name: "Salon Services", IsActive: false}, nil)

	w := serve(svc, id.String(), `{"isActive":false}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"`+msgUpdated+`"`)
	assert.Contains(t, w.Body.String(), `"isActive":false`)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", catalog.ErrServiceNotFound, http.StatusNotFound, msgServiceNotFound},
		{"duplicate", catalog.ErrDuplicateName, http.StatusConflict, msgDuplicateName},
		{"validation", domain.NewValidationError(catalog.ErrInvalidInput, "durationMinutes must be a positive integer."), http.StatusBadRequest, "durationMinutes must be a positive integer."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			w := serve(svc, domain.NewServiceID().String(), `{"name":"Yoga"}`)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, `{"message":"`+tt.message+`"}`, w.Body.String())
		})
	}
}

func TestHandle_InvalidID(t *testing.T) {
	svc := new(mockService)

	w := serve(svc, "abc", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
