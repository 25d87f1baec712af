package usecase

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	publisher "github.com/fixway/fixway-jobs-service/internal/infrastructure/kafka"
	disputedto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/dispute"
	"github.com/jaevor/go-nanoid"
)

// RaiseDispute opens a dispute over a job's warranty hold and freezes the hold
// in the same transaction, so the money cannot release while the dispute is
// open. One open dispute per job at a time.
func (uc *DefaultDisputeUsecase) RaiseDispute(input *disputedto.RaiseDisputeInput) (*disputedto.DisputeOutput, error) {
	job, err := uc.jobRepo.GetJobByID(input.JobID)
	if err != nil {
		return nil, err
	}
	if input.Actor.ID != job.ClientID && input.Actor.ID != job.AssignedProviderID {
		return nil, domain.NewAuthorizationError("only a party to the job may raise a dispute")
	}
	if input.Reason == "" {
		return nil, domain.NewValidationError("dispute reason is required")
	}

	hold, err := uc.paymentRepo.GetHoldByJobID(input.JobID)
	if err != nil {
		return nil, err
	}
	if hold.Status == domain.HoldReleased {
		return nil, domain.NewConflictError("warranty hold is already released, nothing left to dispute")
	}

	if existing, err := uc.disputeRepo.GetOpenDisputeByJobID(input.JobID); err != nil {
		if !domain.IsKind(err, domain.KindNotFound) {
			return nil, err
		}
	} else if existing != nil {
		return nil, domain.NewConflictError("an open dispute already exists for this job")
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dispute := &domain.Dispute{
		ID:           idGenerator(),
		JobID:        input.JobID,
		RaisedBy:     input.Actor.ID,
		RaisedByRole: input.Actor.Role,
		Type:         input.Type,
		Status:       domain.DisputeOpen,
		Evidence:     input.Evidence,
		Reason:       input.Reason,
		ReviewBy:     now.Add(uc.reviewTTL),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	holdUpdate := domain.HoldUpdate{}
	guard := hold.Status
	if hold.Status == domain.HoldLocked {
		// An already frozen hold stays frozen with its original reason.
		frozen := domain.HoldFrozen
		isFrozen := true
		frozenAt := &now
		reason := "dispute " + dispute.ID
		holdUpdate = domain.HoldUpdate{
			Status:       &frozen,
			IsFrozen:     &isFrozen,
			FrozenAt:     &frozenAt,
			FreezeReason: &reason,
		}
	}

	if err := uc.disputeRepo.CreateDispute(dispute, hold.ID, guard, holdUpdate); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.DisputesOpenedTotal.Inc()
	}
	uc.publishDisputeEvent(publisher.DisputeEvent{
		DisputeID: dispute.ID,
		JobID:     dispute.JobID,
		RaisedBy:  dispute.RaisedBy,
		Status:    string(dispute.Status),
	})

	counterparty := job.AssignedProviderID
	if input.Actor.ID == job.AssignedProviderID {
		counterparty = job.ClientID
	}
	uc.notify(domain.Notification{
		ActorID:  counterparty,
		JobID:    job.ID,
		Type:     "DISPUTE_OPENED",
		Title:    "A dispute was opened",
		Message:  "The other party opened a dispute on your job. The warranty hold is frozen until it is resolved.",
		Channels: []string{"push", "email"},
	})

	return disputedto.ToDisputeOutput(dispute), nil
}
