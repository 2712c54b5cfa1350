// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bank"

// ─── Ledger ────────────────────────────────────────────────────────────────

// LedgerOperations counts ledger mutations by operation and outcome.
var LedgerOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "operations_total",
	Help:      "Ledger operations by operation (deposit, withdraw, transfer, ...) and outcome.",
}, []string{"operation", "outcome"})

// CommissionsCharged counts withdrawals that carried a commission.
var CommissionsCharged = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "commissions_charged_total",
	Help:      "Withdrawals charged a transaction commission.",
})

// TransferPartialFailures counts transfers whose withdraw leg committed but
// whose deposit leg failed.
var TransferPartialFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "transfer_partial_failures_total",
	Help:      "Transfers left half-applied after the deposit leg failed.",
})

// LockWait observes how long callers waited for a per-account lock.
var LockWait = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "lock_wait_seconds",
	Help:      "Time spent acquiring per-account locks.",
	Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 3},
}, []string{"backend", "outcome"})

// ─── Payment router ────────────────────────────────────────────────────────

// PaymentAttempts counts per-candidate debit attempts.
var PaymentAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "router",
	Name:      "attempts_total",
	Help:      "Card payment debit attempts by candidate position (primary, secondary) and outcome.",
}, []string{"position", "outcome"})

// Payments counts card payments by final result.
var Payments = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "router",
	Name:      "payments_total",
	Help:      "Card payments by result (approved, declined, error).",
}, []string{"result"})

// ─── Directory ─────────────────────────────────────────────────────────────

// DirectoryLookups counts customer directory calls.
var DirectoryLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "directory",
	Name:      "lookups_total",
	Help:      "Customer directory lookups by kind (customer, credit_card) and result (hit, miss, error, cache).",
}, []string{"kind", "result"})

// ─── HTTP ──────────────────────────────────────────────────────────────────

// HTTPRequests counts HTTP requests by route template and status.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "HTTP requests by method, route and status code.",
}, []string{"method", "route", "status"})

// HTTPDuration observes request latency.
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by method and route.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})
