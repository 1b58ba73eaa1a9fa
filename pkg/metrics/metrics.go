package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application's domain counters.
type Metrics struct {
	ScreeningsCreated       prometheus.Counter
	ScreeningsDeleted       prometheus.Counter
	WizardSessionsStarted   prometheus.Counter
	WizardSessionsConfirmed prometheus.Counter
	NotificationsDispatched prometheus.Counter
	NotificationsFailed     prometheus.Counter
	DocumentsRequested      *prometheus.CounterVec
	DatabaseOperations      *prometheus.CounterVec
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ScreeningsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "screenings_created_total",
			Help:      "Total number of screening operations created",
		}),
		ScreeningsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "screenings_deleted_total",
			Help:      "Total number of screening operations deleted",
		}),
		WizardSessionsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wizard_sessions_started_total",
			Help:      "Total number of planning wizard sessions started",
		}),
		WizardSessionsConfirmed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wizard_sessions_confirmed_total",
			Help:      "Total number of wizard sessions confirmed into screenings",
		}),
		NotificationsDispatched: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_dispatched_total",
			Help:      "Total number of staff notifications handed to the broker",
		}),
		NotificationsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_failed_total",
			Help:      "Total number of staff notification dispatches that failed",
		}),
		DocumentsRequested: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_requested_total",
			Help:      "Total number of document generation requests by kind",
		}, []string{"kind"}),
		DatabaseOperations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "database_operations_total",
			Help:      "Total number of database operations",
		}, []string{"operation", "status"}),
	}
}
