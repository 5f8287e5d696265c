// Package metrics exports the chat service's Prometheus metrics.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	turnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cryptochat_turns_total",
		Help: "Chat turns handled, by resolved intent",
	}, []string{"intent"})

	turnDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cryptochat_turn_duration_seconds",
		Help:    "Wall time of one chat turn",
		Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	})

	upstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cryptochat_upstream_errors_total",
		Help: "Failed calls to external services, by service and status",
	}, []string{"service", "status"})
)

func RecordTurn(intent string, took time.Duration) {
	turnsTotal.WithLabelValues(intent).Inc()
	turnDuration.Observe(took.Seconds())
}

type statusCoder interface {
	HTTPStatus() int
}

// RecordUpstreamError counts a failed call; the status label is the HTTP status
// text when err carries one and "transport" otherwise.
func RecordUpstreamError(service string, err error) {
	status := "transport"
	var coder statusCoder
	if errors.As(err, &coder) {
		status = http.StatusText(coder.HTTPStatus())
		if status == "" {
			status = "unknown"
		}
	}
	upstreamErrors.WithLabelValues(service, status).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
