package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersIntakeTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fulfillment_orders_intake_total",
		Help: "Total number of orders accepted from intake.",
	})

	StatusTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fulfillment_status_transitions_total",
		Help: "Total number of committed order status transitions.",
	},
		[]string{"from", "to"},
	)

	OrdersRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fulfillment_orders_rejected_total",
		Help: "Total number of orders rejected during preparation.",
	})

	ItemsScannedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fulfillment_items_scanned_total",
		Help: "Total number of item units scanned.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fulfillment_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	OrdersByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fulfillment_orders",
		Help: "Current number of orders per workflow status.",
	},
		[]string{"status"},
	)

	OutboxTasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fulfillment_outbox_tasks_total",
		Help: "Total number of outbox tasks handed to the producer, by result.",
	},
		[]string{"result"},
	)

	LabelRenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fulfillment_label_render_seconds",
		Help:    "Time spent capturing order label PDFs.",
		Buckets: prometheus.DefBuckets,
	})
)
