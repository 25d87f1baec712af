package usecase

import (
	"log/slog"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	publisher "github.com/fixway/fixway-jobs-service/internal/infrastructure/kafka"
	biddto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/bid"
)

// RejectBid declines a pending bid. The client rejects a provider's original
// bid, the countered provider rejects the client's counter-offer. Rejecting
// the last open bid returns the job to the open pool; the provider's
// rejection counter feeds cooldown and penalty rules.
func (uc *DefaultBidUsecase) RejectBid(input *biddto.RejectBidInput) (*biddto.BidOutput, error) {
	bid, err := uc.bidRepo.GetBidByID(input.BidID)
	if err != nil {
		return nil, err
	}
	job, err := uc.jobRepo.GetJobByID(bid.JobID)
	if err != nil {
		return nil, err
	}
	if bid.IsCounterOffer {
		// Counter-offers belong to the client; the provider declines them.
		if input.Actor.Role != domain.RoleProvider || input.Actor.ID != bid.ProviderID {
			return nil, domain.NewAuthorizationError("only the countered provider may reject this offer")
		}
	} else {
		if input.Actor.Role != domain.RoleClient || input.Actor.ID != job.ClientID {
			return nil, domain.NewAuthorizationError("only the posting client may reject a bid")
		}
	}
	if bid.Status != domain.BidPending {
		return nil, domain.NewConflictError("bid is not pending")
	}

	if err := uc.bidRepo.UpdateBidStatus(bid.ID, domain.BidRejected); err != nil {
		return nil, err
	}
	bid.Status = domain.BidRejected

	// Declining a counter-offer is the provider's own choice and does not
	// count against their trust profile.
	if !bid.IsCounterOffer {
		if err := uc.trustUsecase.RecordRejection(bid.ProviderID); err != nil {
			slog.Error("failed to record bid rejection", "provider_id", bid.ProviderID, "error", err.Error())
		}
	}

	pending, err := uc.bidRepo.CountPendingBids(job.ID)
	if err != nil {
		return nil, err
	}
	if pending == 0 && job.Status == domain.StatusNegotiationPending {
		// Offers exhausted: back to the open pool.
		next := domain.StatusPending
		recirculation := job.RecirculationCount + 1
		err := uc.jobRepo.TransitionJob(job.ID, domain.StatusNegotiationPending, domain.JobUpdate{
			Status:             &next,
			RecirculationCount: &recirculation,
		})
		if err != nil && !domain.IsKind(err, domain.KindConflict) {
			return nil, err
		}
	}

	if uc.metrics != nil {
		uc.metrics.BidsRejectedTotal.Inc()
	}
	uc.publishJobEvent(publisher.JobEvent{
		JobID:      job.ID,
		ClientID:   job.ClientID,
		ProviderID: bid.ProviderID,
		Status:     string(job.Status),
		Amount:     bid.OfferedPrice,
		Stage:      "bid_rejected",
	})
	uc.notify(domain.Notification{
		ActorID:  bid.ProviderID,
		JobID:    job.ID,
		Type:     "BID_REJECTED",
		Title:    "Bid rejected",
		Message:  "The client declined your offer.",
		Channels: []string{"push"},
	})

	return biddto.ToBidOutput(bid), nil
}
