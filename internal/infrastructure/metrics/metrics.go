package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Image API metrics.
var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "imagine",
			Subsystem: "image_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "imagine",
			Subsystem: "image_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint", "status"},
	)

	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "imagine",
			Subsystem: "image_api",
			Name:      "generations_total",
			Help:      "Total successful image generations",
		},
		[]string{"model"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "imagine",
			Subsystem: "image_api",
			Name:      "generation_duration_seconds",
			Help:      "Provider inference duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"model"},
	)

	ProviderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "imagine",
			Subsystem: "image_api",
			Name:      "provider_errors_total",
			Help:      "Total provider call failures",
		},
		[]string{"model", "error_type"},
	)

	ValidationRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "imagine",
			Subsystem: "image_api",
			Name:      "validation_rejections_total",
			Help:      "Total generation requests rejected before reaching the provider",
		},
		[]string{"reason"},
	)
)

// RecordRequest records a completed HTTP request.
func RecordRequest(method, endpoint, status string, duration float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(duration)
}

// RecordGeneration records a successful provider inference call.
func RecordGeneration(model string, duration float64) {
	GenerationsTotal.WithLabelValues(model).Inc()
	GenerationDuration.WithLabelValues(model).Observe(duration)
}

// RecordProviderError records a failed provider call.
func RecordProviderError(model, errorType string) {
	ProviderErrorsTotal.WithLabelValues(model, errorType).Inc()
}

// RecordValidationRejection records a request rejected by validation.
func RecordValidationRejection(reason string) {
	ValidationRejectionsTotal.WithLabelValues(reason).Inc()
}
