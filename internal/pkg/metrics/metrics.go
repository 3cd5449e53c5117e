package metrics

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/database"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// AttendanceMarks counts successful attendance writes by status
	AttendanceMarks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "factory_attendance_marks_total",
		Help: "Total attendance marks written, by status",
	}, []string{"status"})

	// BatchMarkFailures counts failed items inside batch submissions
	BatchMarkFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "factory_attendance_batch_failures_total",
		Help: "Total failed attendance marks inside batch submissions",
	})

	// ReportDuration tracks how long report builds take
	ReportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "factory_attendance_report_duration_seconds",
		Help:    "Attendance report build duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
	}, []string{"report"})

	// StoreErrors counts persistence failures surfaced to callers
	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "factory_attendance_store_errors_total",
		Help: "Total store failures by operation",
	}, []string{"operation"})
)

// ObserveStoreError counts err under operation when it is a store failure.
func ObserveStoreError(operation string, err error) {
	if errors.Is(err, database.ErrStore) {
		StoreErrors.WithLabelValues(operation).Inc()
	}
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
