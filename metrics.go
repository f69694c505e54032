package xapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "xapi"

// Result label values of the requests counter.
const (
	resultOK       = "ok"
	resultAPIError = "api_error"
	resultError    = "error"
)

// Metrics holds the Prometheus collectors updated by a Connector.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	connected prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "requests_total",
			Help:      "Number of commands sent, by command and result.",
		}, []string{"command", "result"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "request_duration_seconds",
			Help:      "Round trip time of commands, settle interval included.",
			Buckets:   []float64{.05, .1, .2, .3, .5, 1, 2, 5, 10},
		}, []string{"command"}),
		connected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "connected",
			Help:      "1 while the socket is open.",
		}),
	}

	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.requests, m.latency, m.connected} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(command, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(command, result).Inc()
	m.latency.WithLabelValues(command).Observe(d.Seconds())
}

func (m *Metrics) setConnected(connected bool) {
	if m == nil {
		return
	}
	if connected {
		m.connected.Set(1)
		return
	}
	m.connected.Set(0)
}
