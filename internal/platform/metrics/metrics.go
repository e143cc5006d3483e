package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	AttendeesRegistered   prometheus.Counter
	AttendeesDeleted      prometheus.Counter
	InvalidRecordsDropped prometheus.Counter
	SuggestionFallbacks   prometheus.Counter
	SMSSent               prometheus.Counter
	SMSFailed             prometheus.Counter
	ListDuration          prometheus.Histogram
}

// New creates and registers all Prometheus metrics on the provided registerer.
// Passing a fresh registry keeps tests isolated from the default one.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AttendeesRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "summit_attendees_registered_total",
			Help: "Total number of attendee records persisted",
		}),
		AttendeesDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "summit_attendees_deleted_total",
			Help: "Total number of attendee delete operations",
		}),
		InvalidRecordsDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "summit_invalid_records_dropped_total",
			Help: "Stored records filtered out on read for failing structural validation",
		}),
		SuggestionFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "summit_suggestion_fallbacks_total",
			Help: "Registrations that used the static suggestion text because the collaborator failed",
		}),
		SMSSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "summit_sms_sent_total",
			Help: "Confirmation SMS messages accepted by the notification collaborator",
		}),
		SMSFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "summit_sms_failed_total",
			Help: "Confirmation SMS sends that failed (registration unaffected)",
		}),
		ListDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "summit_attendee_list_duration_seconds",
			Help:    "Duration of attendee List operations (admin view critical path)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// ObserveList records the duration of a List operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveList(start time.Time) {
	m.ListDuration.Observe(time.Since(start).Seconds())
}
