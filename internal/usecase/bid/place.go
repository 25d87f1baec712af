package usecase

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	publisher "github.com/fixway/fixway-jobs-service/internal/infrastructure/kafka"
	biddto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/bid"
	"github.com/google/uuid"
)

// PlaceBid registers a provider's offer on an open job. A provider may hold
// only one active original bid per job; a second attempt is a conflict.
func (uc *DefaultBidUsecase) PlaceBid(input *biddto.PlaceBidInput) (*biddto.BidOutput, error) {
	if input.OfferedPrice <= 0 {
		return nil, domain.NewValidationError("offered price must be positive")
	}

	job, err := uc.jobRepo.GetJobByID(input.JobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.StatusPending && job.Status != domain.StatusNegotiationPending {
		return nil, domain.NewOperationStateError("place bid", job.Status)
	}
	if !job.NegotiationOpen(time.Now()) {
		return nil, domain.NewConflictError("negotiation window has closed")
	}

	rules, err := uc.trustUsecase.AutoRulesFor(input.ProviderID, domain.RoleProvider)
	if err != nil {
		return nil, err
	}
	if rules.AutoRejectBids {
		return nil, domain.NewAuthorizationError("provider risk level blocks new bids")
	}

	if existing, err := uc.bidRepo.GetActiveOriginalBid(input.JobID, input.ProviderID); err == nil && existing != nil {
		return nil, domain.NewConflictError("provider already holds an active bid on this job")
	} else if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	// First bid pulls the job into negotiation. A concurrent first bid may
	// win the transition; that state is equally acceptable.
	if job.Status == domain.StatusPending {
		next := domain.StatusNegotiationPending
		err := uc.jobRepo.TransitionJob(job.ID, domain.StatusPending, domain.JobUpdate{Status: &next})
		if err != nil {
			if !domain.IsKind(err, domain.KindConflict) {
				return nil, err
			}
			current, err := uc.jobRepo.GetJobByID(job.ID)
			if err != nil {
				return nil, err
			}
			if current.Status != domain.StatusNegotiationPending {
				return nil, domain.NewOperationStateError("place bid", current.Status)
			}
		}
	}

	bid := &domain.Bid{
		ID:           uuid.New().String(),
		JobID:        input.JobID,
		ProviderID:   input.ProviderID,
		OfferedPrice: domain.Round2(input.OfferedPrice),
		Status:       domain.BidPending,
		RoundNumber:  1,
		CreatedAt:    time.Now(),
	}
	if err := uc.bidRepo.CreateBid(bid); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.BidsPlacedTotal.Inc()
	}
	uc.publishJobEvent(publisher.JobEvent{
		JobID:      job.ID,
		ClientID:   job.ClientID,
		ProviderID: input.ProviderID,
		Status:     string(domain.StatusNegotiationPending),
		Amount:     bid.OfferedPrice,
		Stage:      "bid_placed",
	})
	uc.notify(domain.Notification{
		ActorID:  job.ClientID,
		JobID:    job.ID,
		Type:     "BID_PLACED",
		Title:    "New bid on your job",
		Message:  "A provider has placed a bid on your job.",
		Channels: []string{"push", "email"},
	})

	return biddto.ToBidOutput(bid), nil
}
