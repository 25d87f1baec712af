package usecase

import (
	"log/slog"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	publisher "github.com/fixway/fixway-jobs-service/internal/infrastructure/kafka"
	disputedto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/dispute"
	"github.com/jaevor/go-nanoid"
)

// ResolveDispute records the operator's ruling and settles the frozen hold.
// Provider favored: the hold unfreezes and its warranty window is extended by
// the time it spent frozen. Client favored: the held amount is refunded to the
// client and the hold closes. Either way the losing side's dispute count goes
// up and their trust score is recomputed.
func (uc *DefaultDisputeUsecase) ResolveDispute(input *disputedto.ResolveDisputeInput) (*disputedto.DisputeOutput, error) {
	if input.Outcome != domain.OutcomeProviderFavored && input.Outcome != domain.OutcomeClientFavored {
		return nil, domain.NewValidationError("unknown dispute outcome")
	}

	dispute, err := uc.disputeRepo.GetDisputeByID(input.DisputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Status == domain.DisputeResolved {
		return nil, domain.NewConflictError("dispute is already resolved")
	}

	job, err := uc.jobRepo.GetJobByID(dispute.JobID)
	if err != nil {
		return nil, err
	}
	hold, err := uc.paymentRepo.GetHoldByJobID(dispute.JobID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	resolved := domain.DisputeResolved
	resolvedAt := &now
	update := domain.DisputeUpdate{
		Status:     &resolved,
		Outcome:    &input.Outcome,
		Resolution: &input.Resolution,
		ResolvedAt: &resolvedAt,
	}

	var holdUpdate domain.HoldUpdate
	var entries []*domain.LedgerEntry

	switch input.Outcome {
	case domain.OutcomeProviderFavored:
		locked := domain.HoldLocked
		unfrozen := false
		var noFrozenAt *time.Time
		emptyReason := ""
		effectiveEnd := hold.EffectiveEndDate
		if hold.FrozenAt != nil {
			// The warranty clock was paused while frozen.
			effectiveEnd = effectiveEnd.Add(now.Sub(*hold.FrozenAt))
		}
		holdUpdate = domain.HoldUpdate{
			Status:           &locked,
			IsFrozen:         &unfrozen,
			FrozenAt:         &noFrozenAt,
			FreezeReason:     &emptyReason,
			EffectiveEndDate: &effectiveEnd,
		}
		hold.EffectiveEndDate = effectiveEnd

	case domain.OutcomeClientFavored:
		released := domain.HoldReleased
		unfrozen := false
		releasedAt := &now
		reason := "dispute resolved in client's favor"
		holdUpdate = domain.HoldUpdate{
			Status:        &released,
			IsFrozen:      &unfrozen,
			ReleasedAt:    &releasedAt,
			ReleaseReason: &reason,
		}
		entries, err = refundLedgerEntries(hold, now)
		if err != nil {
			return nil, err
		}
	}

	if err := uc.disputeRepo.ResolveDispute(dispute.ID, update, hold.ID, hold.Status, holdUpdate, entries); err != nil {
		return nil, err
	}

	dispute.Status = resolved
	dispute.Outcome = input.Outcome
	dispute.Resolution = input.Resolution
	dispute.ResolvedAt = &now

	// The ruling counts against the losing party. The resolution is already
	// committed; a failed trust update is logged, not surfaced.
	loserID, loserRole := job.AssignedProviderID, domain.RoleProvider
	if input.Outcome == domain.OutcomeProviderFavored {
		loserID, loserRole = job.ClientID, domain.RoleClient
	}
	if err := uc.trustUsecase.RecordDisputeResolved(loserID, loserRole); err != nil {
		slog.Error("failed to record dispute resolution", "actor_id", loserID, "error", err.Error())
	}

	if uc.metrics != nil {
		uc.metrics.DisputesResolvedTotal.WithLabelValues(string(input.Outcome)).Inc()
	}
	uc.publishDisputeEvent(publisher.DisputeEvent{
		DisputeID: dispute.ID,
		JobID:     dispute.JobID,
		Status:    string(dispute.Status),
		Outcome:   string(input.Outcome),
	})
	for _, actorID := range []string{job.ClientID, job.AssignedProviderID} {
		uc.notify(domain.Notification{
			ActorID:  actorID,
			JobID:    job.ID,
			Type:     "DISPUTE_RESOLVED",
			Title:    "Dispute resolved",
			Message:  "An operator has ruled on the dispute: " + input.Resolution,
			Channels: []string{"push", "email"},
		})
	}

	return disputedto.ToDisputeOutput(dispute), nil
}

func refundLedgerEntries(hold *domain.WarrantyHold, now time.Time) ([]*domain.LedgerEntry, error) {
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
			Description: "warranty hold refund",
			CreatedAt:   now,
		},
		{
			ID:          idGenerator(),
			JobID:       hold.JobID,
			Account:     domain.AccountClientRefund,
			EntryType:   domain.EntryCredit,
			Amount:      hold.HoldAmount,
			Description: "client refund from dispute ruling",
			CreatedAt:   now,
		},
	}, nil
}
