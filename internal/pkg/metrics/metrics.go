package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "facility_finder"

var (
	// ProviderRequests - запросы к провайдеру мест по эндпоинту и исходу
	ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "places",
		Name:      "requests_total",
		Help:      "Places provider requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	ProviderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "places",
		Name:      "request_duration_seconds",
		Help:      "Places provider request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	// FacilitiesReturned - размер выдачи после клиентских фильтров
	FacilitiesReturned = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "facilities_returned",
		Help:      "Facilities returned per operation after client-side filtering.",
		Buckets:   []float64{0, 1, 2, 5, 10, 15, 20},
	}, []string{"operation"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route and status.",
	}, []string{"method", "route", "status"})

	HTTPLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	WorkerMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "worker",
		Name:      "messages_total",
		Help:      "Stream messages handled by the search worker.",
	}, []string{"result"})
)

// Outcome labels
const (
	OutcomeOK        = "ok"
	OutcomeTransport = "transport_error"
	OutcomeStatus    = "status_error"
	OutcomeDecode    = "decode_error"
)
