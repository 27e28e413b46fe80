package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	serviceName string

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	// Бизнес-метрики записи
	AppointmentsCreated *prometheus.CounterVec
	SlotRejections      *prometheus.CounterVec
	SlotConflicts       *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном реестре (используется в тестах)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"service", "operation"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections to the database",
		}, []string{"service"}),

		DBInUseConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),

		DBIdleConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),

		DBWaitCount: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),

		AppointmentsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "appointments_created_total",
			Help: "Total number of appointments created",
		}, []string{"service"}),

		SlotRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "appointment_slot_rejections_total",
			Help: "Appointment windows rejected by availability validation",
		}, []string{"service", "reason"}),

		SlotConflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "appointment_slot_conflicts_total",
			Help: "Appointment windows rejected because the slot is already booked",
		}, []string{"service"}),
	}
}

// ServiceName имя сервиса, которым помечаются метрики
func (m *Metrics) ServiceName() string {
	return m.serviceName
}

// RecordAppointmentCreated учитывает созданную запись
// Методы Record* безопасно вызывать на nil (метрики выключены)
func (m *Metrics) RecordAppointmentCreated() {
	if m == nil {
		return
	}
	m.AppointmentsCreated.WithLabelValues(m.serviceName).Inc()
}

// RecordSlotRejected учитывает отказ валидации слота
func (m *Metrics) RecordSlotRejected(reason string) {
	if m == nil {
		return
	}
	m.SlotRejections.WithLabelValues(m.serviceName, reason).Inc()
}

// RecordSlotConflict учитывает попытку записи на занятый слот
func (m *Metrics) RecordSlotConflict() {
	if m == nil {
		return
	}
	m.SlotConflicts.WithLabelValues(m.serviceName).Inc()
}
