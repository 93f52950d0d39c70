package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DonationsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nanum_donations_created_total",
		Help: "Total number of donations successfully submitted.",
	})

	DonationsApprovedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nanum_donations_approved_total",
		Help: "Total number of donations approved by an administrator.",
	})

	DonationsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nanum_donations_rejected_total",
		Help: "Total number of donations rejected by an administrator.",
	})

	DonationsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nanum_donations_completed_total",
		Help: "Total number of donations reaching the completed lifecycle state.",
	})

	DeliveriesDeliveredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nanum_deliveries_delivered_total",
		Help: "Total number of deliveries marked as delivered.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nanum_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	OrgCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nanum_org_cache_items",
		Help: "Current number of approved organizations in the cache.",
	})
)
