package background

import (
	"context"
	"log/slog"
	"time"

	disputeuc "github.com/fixway/fixway-jobs-service/internal/usecase/dispute"
	jobuc "github.com/fixway/fixway-jobs-service/internal/usecase/job"
	paymentuc "github.com/fixway/fixway-jobs-service/internal/usecase/payment"
)

// Sweeper runs the periodic reclaim loops: expired soft locks, stalled
// negotiations, unpaid assignments, releasable warranty holds and dispute
// reviews nobody picked up.
type Sweeper struct {
	jobs     jobuc.JobUsecase
	payments paymentuc.PaymentUsecase
	disputes disputeuc.DisputeUsecase
	interval time.Duration
}

func NewSweeper(jobs jobuc.JobUsecase, payments paymentuc.PaymentUsecase, disputes disputeuc.DisputeUsecase, interval time.Duration) *Sweeper {
	return &Sweeper{
		jobs:     jobs,
		payments: payments,
		disputes: disputes,
		interval: interval,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Sweeper) runOnce(ctx context.Context) {
	if err := s.jobs.ExpireSoftLocks(ctx); err != nil {
		slog.Error("soft lock sweep failed", "error", err.Error())
	}
	if err := s.jobs.ExpireNegotiations(ctx); err != nil {
		slog.Error("negotiation sweep failed", "error", err.Error())
	}
	if err := s.jobs.ExpirePayments(ctx); err != nil {
		slog.Error("payment deadline sweep failed", "error", err.Error())
	}
	if err := s.payments.ReleaseEligibleHolds(ctx); err != nil {
		slog.Error("warranty hold sweep failed", "error", err.Error())
	}
	if err := s.disputes.ResolveExpiredReviews(ctx); err != nil {
		slog.Error("dispute review sweep failed", "error", err.Error())
	}
}
