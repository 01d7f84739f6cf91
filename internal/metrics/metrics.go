package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"saheminvest/internal/money"
)

// HTTP metrics
var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Distribution metrics
var (
	distributionsApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saheminvest_distributions_applied_total",
			Help: "Distribution requests applied to investor wallets.",
		},
		[]string{"type"},
	)

	distributionsRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "saheminvest_distributions_rejected_total",
		Help: "Distribution requests rejected by an administrator.",
	})

	distributionFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saheminvest_distribution_failures_total",
			Help: "Approvals that rolled back, by error kind.",
		},
		[]string{"kind"},
	)

	payoutAmount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saheminvest_payout_amount_total",
			Help: "Amount credited to investors, split into capital and profit.",
		},
		[]string{"component"},
	)

	reconciliationMismatches = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "saheminvest_reconciliation_mismatches",
		Help: "Mismatches found by the last reconciliation run.",
	})
)

var registerOnce sync.Once

// Init registers all collectors in the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpInFlight, httpRequestsTotal, httpRequestDuration,
			distributionsApplied, distributionsRejected, distributionFailures,
			payoutAmount, reconciliationMismatches,
		)
	})
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func RequestStarted()  { httpInFlight.Inc() }
func RequestFinished() { httpInFlight.Dec() }

// ObserveRequest records one finished HTTP request.
func ObserveRequest(method, path, status string, seconds float64) {
	httpRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
}

// DistributionApplied counts a committed distribution and its payouts.
func DistributionApplied(distributionType string, capital, profit money.Money) {
	distributionsApplied.WithLabelValues(distributionType).Inc()
	payoutAmount.WithLabelValues("capital").Add(capital.Decimal().InexactFloat64())
	payoutAmount.WithLabelValues("profit").Add(profit.Decimal().InexactFloat64())
}

func DistributionRejected() { distributionsRejected.Inc() }

// DistributionFailed counts an approval that was rolled back.
func DistributionFailed(kind string) {
	distributionFailures.WithLabelValues(kind).Inc()
}

func ReconciliationMismatches(n int) {
	reconciliationMismatches.Set(float64(n))
}
