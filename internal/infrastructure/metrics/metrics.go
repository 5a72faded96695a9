package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Invoice metrics
	InvoicesGenerated  prometheus.Counter
	InvoiceErrors      *prometheus.CounterVec
	GenerationDuration prometheus.Histogram
	InvoicePages       prometheus.Histogram
	InvoiceLineItems   prometheus.Histogram
	BilledMinutes      prometheus.Counter
	InvoiceAmount      prometheus.Histogram

	// Register metrics
	RegisterWrites *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	HTTPInFlight prometheus.Gauge
}

// New creates all metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Invoice metrics
		InvoicesGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "goinvoice_invoices_generated_total",
			Help: "Total number of invoices generated",
		}),
		InvoiceErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goinvoice_invoice_errors_total",
				Help: "Total number of failed invoice generations by type",
			},
			[]string{"error_type"},
		),
		GenerationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "goinvoice_generation_duration_seconds",
			Help:    "Duration of invoice generation",
			Buckets: prometheus.DefBuckets,
		}),
		InvoicePages: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "goinvoice_invoice_pages",
			Help:    "Pages per generated invoice",
			Buckets: []float64{1, 2, 3, 5, 10, 20},
		}),
		InvoiceLineItems: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "goinvoice_invoice_line_items",
			Help:    "Line items per generated invoice",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
		}),
		BilledMinutes: factory.NewCounter(prometheus.CounterOpts{
			Name: "goinvoice_billed_minutes_total",
			Help: "Total minutes billed across generated invoices",
		}),
		InvoiceAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "goinvoice_invoice_net_amount",
			Help:    "Net amount of generated invoices",
			Buckets: []float64{10, 100, 500, 1000, 5000, 10000, 50000},
		}),

		// Register metrics
		RegisterWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goinvoice_register_writes_total",
				Help: "Invoice register writes by status",
			},
			[]string{"status"},
		),

		// API metrics
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goinvoice_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "goinvoice_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "goinvoice_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		}),
	}
}

// WriteTextfile writes all metrics gathered from g to path in the text
// exposition format, for the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
