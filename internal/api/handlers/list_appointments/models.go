package list_appointments

import (
	"errors"
	"net/url"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var (
	errInvalidStatus     = errors.New("invalid status")
	errInvalidServiceID  = errors.New("invalid service id")
	errInvalidCustomerID = errors.New("invalid customer id")
	errInvalidDateFrom   = errors.New("invalid dateFrom")
	errInvalidDateTo     = errors.New("invalid dateTo")
)

// parseFilter разбирает query-параметры status, service, customerId, dateFrom, dateTo
// customerId учитывается только для администратора
func parseFilter(query url.Values, actor domain.Actor) (domain.AppointmentsFilter, error) {
	var filter domain.AppointmentsFilter

	if raw := query.Get("status"); raw != "" {
		status, err := domain.ParseAppointmentStatus(raw)
		if err != nil {
			return filter, errInvalidStatus
		}
		filter.Status = &status
	}

	if raw := query.Get("service"); raw != "" {
		serviceID, err := domain.ParseServiceID(raw)
		if err != nil {
			return filter, errInvalidServiceID
		}
		filter.ServiceID = &serviceID
	}

	if raw := query.Get("customerId"); raw != "" && actor.IsAdmin() {
		customerID, err := domain.ParseUserID(raw)
		if err != nil {
			return filter, errInvalidCustomerID
		}
		filter.CustomerID = &customerID
	}

	if raw := query.Get("dateFrom"); raw != "" {
		dateFrom, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return filter, errInvalidDateFrom
		}
		filter.DateFrom = &dateFrom
	}

	if raw := query.Get("dateTo"); raw != "" {
		dateTo, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return filter, errInvalidDateTo
		}
		filter.DateTo = &dateTo
	}

	return filter, nil
}
