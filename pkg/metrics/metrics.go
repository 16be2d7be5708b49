package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Результаты операций для label "result"
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics набор Prometheus метрик сервиса
// Все методы безопасны для вызова на nil (метрики выключены в конфиге)
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingsTotal      *prometheus.CounterVec
	cancellationsTotal *prometheus.CounterVec
	notificationsTotal *prometheus.CounterVec
	persistenceOps     *prometheus.CounterVec
	eventsDropped      prometheus.Counter
}

// New создает и регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре (используется в тестах)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),

		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		bookingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "bookings_total",
			Help:      "Booking attempts by result (created, invalid_name, invalid_contact, slot_full, ...).",
		}, []string{"result"}),

		cancellationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "cancellations_total",
			Help:      "Cancellation attempts by result.",
		}, []string{"result"}),

		notificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "notifications_total",
			Help:      "Outbound notifications by target and result.",
		}, []string{"target", "result"}),

		persistenceOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "persistence_operations_total",
			Help:      "Schedule load/save operations by result.",
		}, []string{"operation", "result"}),

		eventsDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "events_dropped_total",
			Help:      "Booking events dropped because the event queue was full.",
		}),
	}
}

// ObserveHTTPRequest записывает метрики HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordBooking учитывает попытку бронирования
func (m *Metrics) RecordBooking(result string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(result).Inc()
}

// RecordCancellation учитывает попытку отмены
func (m *Metrics) RecordCancellation(result string) {
	if m == nil {
		return
	}
	m.cancellationsTotal.WithLabelValues(result).Inc()
}

// RecordNotification учитывает отправку уведомления
func (m *Metrics) RecordNotification(target, result string) {
	if m == nil {
		return
	}
	m.notificationsTotal.WithLabelValues(target, result).Inc()
}

// RecordPersistence учитывает операцию с хранилищем
func (m *Metrics) RecordPersistence(operation, result string) {
	if m == nil {
		return
	}
	m.persistenceOps.WithLabelValues(operation, result).Inc()
}

// RecordEventDropped учитывает потерянное событие
func (m *Metrics) RecordEventDropped() {
	if m == nil {
		return
	}
	m.eventsDropped.Inc()
}
