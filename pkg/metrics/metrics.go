package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransfersSubmitted counts submit attempts by outcome (accepted, rejected).
	TransfersSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_transfers_submitted_total",
		Help: "Number of transfer submissions by outcome",
	}, []string{"outcome"})

	// ReconciledRows counts rows moved to a terminal status by the sweep.
	ReconciledRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_reconciled_total",
		Help: "Number of transactions reconciled to a terminal status",
	}, []string{"status"})

	// ReconcileErrors counts per-row sweep failures that were skipped.
	ReconcileErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallet_reconcile_errors_total",
		Help: "Number of per-row reconciliation failures",
	})

	// StuckIntents tracks SUBMITTING rows older than the anomaly threshold.
	StuckIntents = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wallet_stuck_intents",
		Help: "Transactions stuck in SUBMITTING beyond the anomaly threshold",
	})
)
