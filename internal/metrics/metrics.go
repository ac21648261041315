// Package metrics exposes Prometheus counters for ledger operations.
// They register on the default registry; the embedding process decides
// whether and where to serve them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GroupsCreated counts groups created.
	GroupsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ledger",
		Name:      "groups_created_total",
		Help:      "Number of expense groups created.",
	})

	// ExpensesRecorded counts shared expenses recorded.
	ExpensesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ledger",
		Name:      "expenses_recorded_total",
		Help:      "Number of shared expenses recorded.",
	})

	// SplitsCreated counts expense splits created.
	SplitsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ledger",
		Name:      "splits_created_total",
		Help:      "Number of expense splits created.",
	})

	// SettlementsCompleted counts non-zero settlements.
	SettlementsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ledger",
		Name:      "settlements_completed_total",
		Help:      "Number of settlements that cleared at least one split.",
	})

	// SettledAmount accumulates cleared amounts. Float-valued for
	// observability only; the ledger itself never leaves decimal.
	SettledAmount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ledger",
		Name:      "settled_amount_total",
		Help:      "Sum of amounts cleared by settlements.",
	})
)
