package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mealtrack"

// Estimation outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeUpstream = "upstream_error"
	OutcomeParse    = "parse_error"
	OutcomeRejected = "rejected"
)

var (
	estimationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "estimation",
		Name:      "requests_total",
		Help:      "Meal photo estimations by outcome.",
	}, []string{"outcome"})

	estimationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "estimation",
		Name:      "duration_seconds",
		Help:      "Latency of meal photo estimations, including the vision call.",
		Buckets:   []float64{0.5, 1, 2, 4, 8, 15, 30, 60},
	})

	mealsLogged = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "meals_logged_total",
		Help:      "Meal entries appended to the day ledger by source.",
	}, []string{"source"})

	caloriesConsumed = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "calories_consumed",
		Help:      "Calories logged so far in the current day ledger.",
	})

	ledgerFlushFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "flush_failures_total",
		Help:      "Ledger mutations rejected because persisting them failed.",
	})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method and status code.",
	}, []string{"method", "code"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

func init() {
	prometheus.MustRegister(
		estimationsTotal, estimationDuration,
		mealsLogged, caloriesConsumed, ledgerFlushFailures,
		httpRequests, httpDuration,
	)
}

// RecordEstimation counts one estimation attempt and its latency.
func RecordEstimation(outcome string, took time.Duration) {
	estimationsTotal.WithLabelValues(outcome).Inc()
	estimationDuration.Observe(took.Seconds())
}

// RecordMealLogged counts an appended entry.
func RecordMealLogged(source string) {
	mealsLogged.WithLabelValues(source).Inc()
}

// SetCaloriesConsumed updates the day's calorie total.
func SetCaloriesConsumed(total int) {
	caloriesConsumed.Set(float64(total))
}

// RecordFlushFailure counts a mutation lost to a persistence error.
func RecordFlushFailure() {
	ledgerFlushFailures.Inc()
}

// RecordHTTPRequest counts one served request and its latency.
func RecordHTTPRequest(method string, status int, took time.Duration) {
	httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method).Observe(took.Seconds())
}
