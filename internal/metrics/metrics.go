package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studioslot_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studioslot_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studioslot_bookings_total",
			Help: "Total number of bookings created",
		},
		[]string{"status", "service_type"},
	)

	BookingRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studioslot_booking_rejections_total",
			Help: "Booking requests rejected because the slot was taken",
		},
		[]string{"reason"},
	)

	BookingStatusChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studioslot_booking_status_changes_total",
			Help: "Administrator status transitions",
		},
		[]string{"status"},
	)

	BlockedSlotsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studioslot_blocked_slots_created_total",
			Help: "Blocked slots created",
		},
		[]string{"mode"},
	)

	DateLockWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "studioslot_date_lock_wait_seconds",
			Help:    "Time spent waiting for the per-date booking lock",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studioslot_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "studioslot_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(status, serviceType string) {
	BookingsTotal.WithLabelValues(status, serviceType).Inc()
}

func RecordRejection(reason string) {
	BookingRejectionsTotal.WithLabelValues(reason).Inc()
}

func RecordStatusChange(status string) {
	BookingStatusChangesTotal.WithLabelValues(status).Inc()
}

func RecordBlockedSlots(mode string, n int) {
	BlockedSlotsCreatedTotal.WithLabelValues(mode).Add(float64(n))
}

func RecordLockWait(seconds float64) {
	DateLockWait.Observe(seconds)
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func SetEmailQueueLength(n int64) {
	EmailQueueLength.Set(float64(n))
}
