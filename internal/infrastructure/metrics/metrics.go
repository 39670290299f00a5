package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PaymentMetrics covers both money-moving operations.
type PaymentMetrics struct {
	PurchasesTotal        prometheus.CounterVec
	PurchaseAmountTotal   prometheus.CounterVec
	WithdrawalsTotal      prometheus.CounterVec
	WithdrawalAmountTotal prometheus.CounterVec

	PlatformFeeTotal prometheus.CounterVec

	OperationErrorsTotal prometheus.CounterVec

	OperationDuration prometheus.HistogramVec
}

func NewPaymentMetrics() *PaymentMetrics {
	return &PaymentMetrics{
		PurchasesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "purchases_total",
				Help: "Total number of completed purchases",
			},
			[]string{"merchant_id"},
		),

		PurchaseAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "purchase_amount_total",
				Help: "Total purchase volume in reference-asset base units",
			},
			[]string{"merchant_id"},
		),

		WithdrawalsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "withdrawals_total",
				Help: "Total number of completed merchant withdrawals",
			},
			[]string{"merchant_id"},
		),

		WithdrawalAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "withdrawal_amount_total",
				Help: "Total withdrawal volume in reference-asset base units",
			},
			[]string{"merchant_id"},
		),

		PlatformFeeTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "platform_fee_total",
				Help: "Total platform fees collected in reference-asset base units",
			},
			[]string{"operation"},
		),

		OperationErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "operation_errors_total",
				Help: "Failed operations by reason",
			},
			[]string{"operation", "reason"},
		),

		OperationDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "operation_duration_seconds",
				Help:    "Operation processing time in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"operation"},
		),
	}
}
