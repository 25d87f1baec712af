package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// JobMetrics covers the broker lifecycle and the settlement money flow.
type JobMetrics struct {
	JobsCreatedTotal   *prometheus.CounterVec
	JobsCompletedTotal *prometheus.CounterVec
	JobsCancelledTotal *prometheus.CounterVec
	JobsRepostedTotal  prometheus.Counter

	BidsPlacedTotal   prometheus.Counter
	BidsAcceptedTotal prometheus.Counter
	BidsRejectedTotal prometheus.Counter

	PaymentsSplitTotal       prometheus.Counter
	PaymentsSplitAmountTotal prometheus.Counter
	CommissionAmountTotal    prometheus.Counter
	WarrantyHeldAmountTotal  prometheus.Counter
	HoldsReleasedTotal       prometheus.Counter
	HoldsFrozenTotal         prometheus.Counter
	HoldsReleasedAmountTotal prometheus.Counter

	DisputesOpenedTotal   prometheus.Counter
	DisputesResolvedTotal *prometheus.CounterVec
}

func NewJobMetrics(reg prometheus.Registerer) *JobMetrics {
	factory := promauto.With(reg)
	return &JobMetrics{
		JobsCreatedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jobs_created_total",
			Help: "Jobs posted, by category",
		}, []string{"category"}),
		JobsCompletedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jobs_completed_total",
			Help: "Jobs completed, by category",
		}, []string{"category"}),
		JobsCancelledTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jobs_cancelled_total",
			Help: "Jobs cancelled, by reason",
		}, []string{"reason"}),
		JobsRepostedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "jobs_reposted_total",
			Help: "Jobs returned to the open pool after a timeout",
		}),
		BidsPlacedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "bids_placed_total",
			Help: "Bids placed by providers",
		}),
		BidsAcceptedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "bids_accepted_total",
			Help: "Bid acceptances locking a final price",
		}),
		BidsRejectedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "bids_rejected_total",
			Help: "Bids rejected",
		}),
		PaymentsSplitTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "payments_split_total",
			Help: "Payment splits executed",
		}),
		PaymentsSplitAmountTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "payments_split_amount_total",
			Help: "Total amount settled through payment splits",
		}),
		CommissionAmountTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "commission_amount_total",
			Help: "Platform commission collected",
		}),
		WarrantyHeldAmountTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "warranty_held_amount_total",
			Help: "Amount placed under warranty hold",
		}),
		HoldsReleasedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "warranty_holds_released_total",
			Help: "Warranty holds released to providers",
		}),
		HoldsFrozenTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "warranty_holds_frozen_total",
			Help: "Warranty holds frozen",
		}),
		HoldsReleasedAmountTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "warranty_holds_released_amount_total",
			Help: "Amount released from warranty holds",
		}),
		DisputesOpenedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "disputes_opened_total",
			Help: "Disputes raised",
		}),
		DisputesResolvedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "disputes_resolved_total",
			Help: "Disputes resolved, by outcome",
		}, []string{"outcome"}),
	}
}
