package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"hostelgate/internal/gate/models"
)

// Metrics holds the Prometheus collectors for the gate and session services.
type Metrics struct {
	ResidentsRegistered prometheus.Counter
	Movements           *prometheus.CounterVec
	EntriesIgnored      prometheus.Counter
	Logins              *prometheus.CounterVec
	Occupancy           *prometheus.GaugeVec
	MovementDuration    prometheus.Histogram
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg. Tests pass a fresh
// prometheus.NewRegistry(); the server passes prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ResidentsRegistered: f.NewCounter(prometheus.CounterOpts{
			Name: "hostelgate_residents_registered_total",
			Help: "Total number of residents registered",
		}),
		Movements: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hostelgate_movements_total",
			Help: "Total number of movement log entries written, by action",
		}, []string{"action"}),
		EntriesIgnored: f.NewCounter(prometheus.CounterOpts{
			Name: "hostelgate_entries_ignored_total",
			Help: "ENTRY scans for residents already inside",
		}),
		Logins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hostelgate_logins_total",
			Help: "Login attempts by result and role",
		}, []string{"result", "role"}),
		Occupancy: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hostelgate_residents",
			Help: "Residents by current status",
		}, []string{"status"}),
		MovementDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "hostelgate_log_movement_duration_seconds",
			Help:    "Duration of LogMovement operations",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hostelgate_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) IncrementResidentsRegistered() {
	m.ResidentsRegistered.Inc()
}

func (m *Metrics) IncrementMovement(action models.Action) {
	m.Movements.WithLabelValues(string(action)).Inc()
}

func (m *Metrics) IncrementEntryIgnored() {
	m.EntriesIgnored.Inc()
}

// IncrementLogin records a login attempt; role is empty for failures.
func (m *Metrics) IncrementLogin(success bool, role string) {
	result := "failure"
	if success {
		result = "success"
	}
	m.Logins.WithLabelValues(result, role).Inc()
}

// SetOccupancy publishes the current inside/outside counts.
func (m *Metrics) SetOccupancy(o models.Occupancy) {
	m.Occupancy.WithLabelValues(string(models.StatusInside)).Set(float64(o.Inside))
	m.Occupancy.WithLabelValues(string(models.StatusOutside)).Set(float64(o.Outside))
}

// ObserveMovement records the duration of a LogMovement call.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveMovement(start time.Time) {
	m.MovementDuration.Observe(time.Since(start).Seconds())
}

// ObserveHTTPRequest records the duration of a handled request.
func (m *Metrics) ObserveHTTPRequest(method, route string, d time.Duration) {
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
