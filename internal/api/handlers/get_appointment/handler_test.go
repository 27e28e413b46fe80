package get_appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, actor domain.Actor, id domain.AppointmentID) (*models.AppointmentResponse, error) {
	args := m.Called(ctx, actor, id)
	resp, _ := args.Get(0).(*models.AppointmentResponse)
	return resp, args.Error(1)
}

var customer = domain.Actor{UserID: domain.UserID{UUID: domain.NewAppointmentID().UUID}, Role: domain.RoleCustomer}

func serve(svc *mockService, actor *domain.Actor, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/appointments/{appointmentId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/appointments/"+id, nil)
	if actor != nil {
		req = req.WithContext(middleware.WithActor(req.Context(), *actor))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandle_Success(t *testing.T) {
	id := domain.NewAppointmentID()
	svc := new(mockService)
	svc.On("GetByID", mock.Anything, customer, id).Return(&models.AppointmentResponse{
		ID:              id,
		CustomerID:      customer.UserID,
		AppointmentDate: "2024-01-01",
		StartTime:       "10:00 AM",
		EndTime:         "11:00 AM",
		Status:          domain.StatusPending,
	}, nil)

	w := serve(svc, &customer, id.String())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"appointment":{"id":"`+id.String()+`"`)
	assert.Contains(t, w.Body.String(), `"startTime":"10:00 AM"`)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", appointments.ErrAppointmentNotFound, http.StatusNotFound, msgNotFound},
		{"foreign appointment", appointments.ErrAccessDenied, http.StatusForbidden, msgForbidden},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("GetByID", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			w := serve(svc, &customer, domain.NewAppointmentID().String())

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, `{"message":"`+tt.message+`"}`, w.Body.String())
		})
	}
}

func TestHandle_InvalidID(t *testing.T) {
	svc := new(mockService)

	w := serve(svc, &customer, "42")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"`+msgInvalidAppointmentID+`"}`, w.Body.String())
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_NoActor(t *testing.T) {
	w := serve(new(mockService), nil, domain.NewAppointmentID().String())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
