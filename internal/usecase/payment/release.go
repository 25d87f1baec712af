package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	publisher "github.com/fixway/fixway-jobs-service/internal/infrastructure/kafka"
	paymentdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/payment"
	"github.com/jaevor/go-nanoid"
)

// ReleaseWarrantyHold pays the held amount out to the provider. A locked hold
// releases once its effective warranty window has passed and no dispute is
// open; a frozen hold can only be released by an operator ruling.
func (uc *DefaultPaymentUsecase) ReleaseWarrantyHold(input *paymentdto.ReleaseHoldInput) (*paymentdto.WarrantyHoldOutput, error) {
	hold, err := uc.paymentRepo.GetHoldByID(input.HoldID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	switch hold.Status {
	case domain.HoldReleased:
		return nil, domain.NewConflictError("warranty hold is already released")
	case domain.HoldFrozen:
		if input.Actor.Role != domain.RoleOperator {
			return nil, domain.NewAuthorizationError("frozen holds are released only by dispute resolution")
		}
	case domain.HoldLocked:
		if input.Actor.Role != domain.RoleOperator {
			if hold.EffectiveEndDate.After(now) {
				return nil, domain.NewConflictError("warranty window has not ended yet")
			}
			open, err := uc.disputeRepo.GetOpenDisputeByJobID(hold.JobID)
			if err != nil && !domain.IsKind(err, domain.KindNotFound) {
				return nil, err
			}
			if open != nil {
				return nil, domain.NewConflictError("an open dispute blocks the hold release")
			}
		}
	}

	if err := uc.releaseHold(hold, input.Reason, now); err != nil {
		return nil, err
	}

	uc.notify(domain.Notification{
		ActorID:  hold.ProviderID,
		JobID:    hold.JobID,
		Type:     "HOLD_RELEASED",
		Title:    "Warranty hold released",
		Message:  "Your warranty hold has been released and paid out.",
		Channels: []string{"push"},
	})
	return paymentdto.ToWarrantyHoldOutput(hold), nil
}

// releaseHold flips the hold to RELEASED with the balancing ledger pair and
// marks the payment fully settled. The guard is the hold's current status, so
// two racing releases cannot pay out twice. The passed hold is updated in place.
func (uc *DefaultPaymentUsecase) releaseHold(hold *domain.WarrantyHold, reason string, now time.Time) error {
	entries, err := releaseLedgerEntries(hold, now)
	if err != nil {
		return err
	}

	released := domain.HoldReleased
	unfrozen := false
	releasedAt := &now
	if err := uc.paymentRepo.ReleaseHold(hold.ID, hold.Status, domain.HoldUpdate{
		Status:        &released,
		IsFrozen:      &unfrozen,
		ReleasedAt:    &releasedAt,
		ReleaseReason: &reason,
	}, entries, domain.PaymentReleased); err != nil {
		return err
	}

	hold.Status = released
	hold.IsFrozen = false
	hold.ReleasedAt = &now
	hold.ReleaseReason = reason

	if uc.metrics != nil {
		uc.metrics.HoldsReleasedTotal.Inc()
		uc.metrics.HoldsReleasedAmountTotal.Add(hold.HoldAmount)
	}
	uc.publishSettlementEvent(publisher.SettlementEvent{
		JobID:              hold.JobID,
		HoldID:             hold.ID,
		WarrantyHoldAmount: hold.HoldAmount,
		Stage:              "hold_released",
	})
	return nil
}

// ReleaseEligibleHolds is the background sweep over locked holds whose
// effective warranty window has passed. Holds with an open dispute are left
// for the dispute resolution to settle.
func (uc *DefaultPaymentUsecase) ReleaseEligibleHolds(ctx context.Context) error {
	holds, err := uc.paymentRepo.FindReleasableHolds(time.Now())
	if err != nil {
		return err
	}
	for _, hold := range holds {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if _, err := uc.ReleaseWarrantyHold(&paymentdto.ReleaseHoldInput{
			HoldID: hold.ID,
			Actor:  domain.Actor{ID: "scheduler"},
			Reason: "warranty window ended",
		}); err != nil {
			slog.Error("failed to release warranty hold", "holdID", hold.ID, "error", err.Error())
		}
	}
	return nil
}

func releaseLedgerEntries(hold *domain.WarrantyHold, now time.Time) ([]*domain.LedgerEntry, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	return []*domain.LedgerEntry{
		{
			ID:          idGenerator(),
			JobID:       hold.JobID,
			Account:     domain.AccountWarrantyHold,
			EntryType:   domain.EntryDebit,
			Amount:      hold.HoldAmount,
			Description: "warranty hold release",
			CreatedAt:   now,
		},
		{
			ID:          idGenerator(),
			JobID:       hold.JobID,
			Account:     domain.AccountProviderPayable,
			EntryType:   domain.EntryCredit,
			Amount:      hold.HoldAmount,
			Description: "deferred provider payout",
			CreatedAt:   now,
		},
	}, nil
}
