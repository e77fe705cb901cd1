// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the client. A nil *Metrics is
// valid and records nothing, so metrics stay optional for library users.
type Metrics struct {
	// Stream metrics
	UpdatesReceived *prometheus.CounterVec
	PingsAnswered   prometheus.Counter
	Resubscriptions prometheus.Counter
	StreamErrors    prometheus.Counter

	// Supervisor metrics
	Reconnects prometheus.Counter

	// Health metrics
	LastUpdateTimestamp prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "geyser_client"
	}

	return &Metrics{
		UpdatesReceived: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates_received_total",
			Help:      "Update frames received, by variant",
		}, []string{"kind"}),
		PingsAnswered: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pings_answered_total",
			Help:      "Keepalive pings acknowledged",
		}),
		Resubscriptions: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resubscriptions_total",
			Help:      "Mid-stream filter resubscriptions sent",
		}),
		StreamErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stream_errors_total",
			Help:      "Stream receive and decode failures",
		}),
		Reconnects: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconnects_total",
			Help:      "Connection retry attempts after the first",
		}),
		LastUpdateTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_update_timestamp_seconds",
			Help:      "Unix time of the most recent data update",
		}),
	}
}

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// IncUpdateReceived records one data update of the given kind.
func (m *Metrics) IncUpdateReceived(kind string) {
	if m == nil {
		return
	}
	m.UpdatesReceived.WithLabelValues(kind).Inc()
	m.LastUpdateTimestamp.Set(float64(time.Now().Unix()))
}

// IncPingAnswered records one acknowledged keepalive ping.
func (m *Metrics) IncPingAnswered() {
	if m == nil {
		return
	}
	m.PingsAnswered.Inc()
}

// IncResubscription records one mid-stream resubscription.
func (m *Metrics) IncResubscription() {
	if m == nil {
		return
	}
	m.Resubscriptions.Inc()
}

// IncStreamError records one stream receive or decode failure.
func (m *Metrics) IncStreamError() {
	if m == nil {
		return
	}
	m.StreamErrors.Inc()
}

// IncReconnect records one connection retry attempt.
func (m *Metrics) IncReconnect() {
	if m == nil {
		return
	}
	m.Reconnects.Inc()
}
