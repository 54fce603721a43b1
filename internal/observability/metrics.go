package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for an event manager run.
type Metrics struct {
	AttendeesProcessed prometheus.Counter
	LettersWritten     prometheus.Counter
	InvalidPhones      prometheus.Counter
	LookupFallbacks    prometheus.Counter
	RegistrationsTally prometheus.Counter
	RegDateErrors      prometheus.Counter
	PipelineRunning    prometheus.Gauge

	PassDuration *prometheus.HistogramVec // labels: pass={attendees,regtimes}

	// Representative lookup metrics.
	LookupRequests    *prometheus.CounterVec // labels: outcome={success,error,empty}
	LookupCache       *prometheus.CounterVec // labels: result={hit,miss}
	LookupAPIDuration prometheus.Histogram
	LookupEnabled     prometheus.Gauge
}

// NewMetrics creates and registers all run metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.AttendeesProcessed,
		m.LettersWritten,
		m.InvalidPhones,
		m.LookupFallbacks,
		m.RegistrationsTally,
		m.RegDateErrors,
		m.PipelineRunning,
		m.PassDuration,
		m.LookupRequests,
		m.LookupCache,
		m.LookupAPIDuration,
		m.LookupEnabled,
	)

	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		AttendeesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "event_manager",
			Name:      "attendees_processed_total",
			Help:      "Total roster rows handled by the attendee pass.",
		}),
		LettersWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "event_manager",
			Name:      "letters_written_total",
			Help:      "Total thank-you letters written to the output directory.",
		}),
		InvalidPhones: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "event_manager",
			Name:      "invalid_phone_numbers_total",
			Help:      "Phone numbers that normalized to the sentinel value.",
		}),
		LookupFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "event_manager",
			Name:      "lookup_fallbacks_total",
			Help:      "Letters rendered with the fallback officials message.",
		}),
		RegistrationsTally: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "event_manager",
			Name:      "registrations_tallied_total",
			Help:      "Registration times added to the peak histograms.",
		}),
		RegDateErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "event_manager",
			Name:      "regdate_parse_errors_total",
			Help:      "Rows skipped by the time pass because regdate did not parse.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "event_manager",
			Name:      "pipeline_running",
			Help:      "1 while a run is in progress, 0 otherwise.",
		}),
		PassDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "event_manager",
			Name:      "pass_duration_seconds",
			Help:      "Duration of a complete roster pass.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		}, []string{"pass"}),
		LookupRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "event_manager",
			Name:      "lookup_requests_total",
			Help:      "Civic directory requests by outcome.",
		}, []string{"outcome"}),
		LookupCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "event_manager",
			Name:      "lookup_cache_total",
			Help:      "Representative cache lookups by result.",
		}, []string{"result"}),
		LookupAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "event_manager",
			Name:      "lookup_api_duration_seconds",
			Help:      "Civic directory request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		LookupEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "event_manager",
			Name:      "lookup_enabled",
			Help:      "1 when representative lookup is enabled, 0 otherwise.",
		}),
	}
}
