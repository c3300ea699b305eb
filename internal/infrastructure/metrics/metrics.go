package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bankcore_transfers_total",
			Help: "Total number of transfer requests by outcome",
		},
		[]string{"status"},
	)

	transferDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bankcore_transfer_duration_seconds",
		Help:    "Duration of transfer operations",
		Buckets: prometheus.DefBuckets,
	})

	depositsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bankcore_deposits_total",
			Help: "Total number of deposit requests by outcome",
		},
		[]string{"status"},
	)

	depositDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bankcore_deposit_duration_seconds",
		Help:    "Duration of deposit operations",
		Buckets: prometheus.DefBuckets,
	})
)

// ObserveTransfer records one transfer attempt.
func ObserveTransfer(status string, elapsed time.Duration) {
	transfersTotal.WithLabelValues(status).Inc()
	transferDuration.Observe(elapsed.Seconds())
}

// ObserveDeposit records one deposit attempt.
func ObserveDeposit(status string, elapsed time.Duration) {
	depositsTotal.WithLabelValues(status).Inc()
	depositDuration.Observe(elapsed.Seconds())
}
