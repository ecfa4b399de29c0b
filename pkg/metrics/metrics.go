package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "coffee_shop"

type ServerMetrics struct {
	Requests    *prometheus.CounterVec
	LatencyMS   *prometheus.HistogramVec
	BillsIssued prometheus.Counter
	BillTotal   prometheus.Histogram
	Rejections  *prometheus.CounterVec
}

// NewServerMetrics creates the service metrics and registers them with reg.
func NewServerMetrics(service string, reg prometheus.Registerer) *ServerMetrics {
	m := &ServerMetrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: service,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"handler", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: service,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}, []string{"handler"}),
		BillsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: service,
			Name:      "bills_issued_total",
			Help:      "Bills successfully composed at checkout.",
		}),
		BillTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: service,
			Name:      "bill_total_amount",
			Help:      "Bill totals including GST.",
			Buckets:   []float64{50, 100, 200, 500, 1000, 2500, 5000},
		}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: service,
			Name:      "checkout_rejections_total",
			Help:      "Checkout requests rejected by validation, by error kind.",
		}, []string{"kind"}),
	}

	reg.MustRegister(m.Requests, m.LatencyMS, m.BillsIssued, m.BillTotal, m.Rejections)
	return m
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
