package update_appointment

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

	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	updateAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *updateAppointment.Request) (*updateAppointment.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*updateAppointment.Response)
	return resp, args.Error(1)
}

var customer = domain.Actor{UserID: domain.UserID{UUID: domain.NewAppointmentID().UUID}, Role: domain.RoleCustomer}

func serve(uc *mockUseCase, actor domain.Actor, id, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/appointments/{appointmentId}", NewHandler(uc, logger.Nop()).Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/appointments/"+id, strings.NewReader(body))
	req = req.WithContext(middleware.WithActor(req.Context(), actor))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandle_CustomerCancels(t *testing.T) {
	id := domain.NewAppointmentID()
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *updateAppointment.Request) bool {
		return req.AppointmentID == id && req.Status != nil && *req.Status == domain.StatusCancelled && req.ServiceID == nil
	})).Return(&updateAppointment.Response{ID: id, Status: domain.StatusCancelled}, nil)

	w := serve(uc, customer, id.String(), `{"status":"cancelled","service":"not-even-a-uuid"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), msgUpdated)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", updateAppointment.ErrAppointmentNotFound, http.StatusNotFound, msgNotFound},
		{"foreign", updateAppointment.ErrAccessDenied, http.StatusForbidden, msgForbidden},
		{"customer status", updateAppointment.ErrCustomerStatusChange, http.StatusForbidden, msgCustomerStatus},
		{"final", updateAppointment.ErrAppointmentFinal, http.StatusForbidden, msgAppointmentFinal},
		{"conflict", updateAppointment.ErrSlotAlreadyBooked, http.StatusConflict, msgSlotAlreadyBooked},
		{"validator", domain.NewValidationError(updateAppointment.ErrInvalidSlot, "Selected time is outside working hours."), http.StatusBadRequest, "Selected time is outside working hours."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := serve(uc, customer, domain.NewAppointmentID().String(), `{"startTime":"2:00 PM"}`)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, `{"message":"`+tt.message+`"}`, w.Body.String())
		})
	}
}

func TestHandle_BadRequests(t *testing.T) {
	admin := domain.Actor{UserID: customer.UserID, Role: domain.RoleAdmin}

	tests := []struct {
		name    string
		id      string
		body    string
		message string
	}{
		{"bad id", "123", `{}`, msgInvalidAppointmentID},
		{"bad date", domain.NewAppointmentID().String(), `{"appointmentDate":"2024-13-01"}`, msgInvalidDate},
		{"bad status", domain.NewAppointmentID().String(), `{"status":"done"}`, msgInvalidStatus},
		{"bad service", domain.NewAppointmentID().String(), `{"service":"x"}`, msgInvalidServiceID},
		{"bad customer", domain.NewAppointmentID().String(), `{"customer":"x"}`, msgInvalidCustomerID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)

			w := serve(uc, admin, tt.id, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"message":"`+tt.message+`"}`, w.Body.String())
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}
