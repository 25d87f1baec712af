package usecase

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	publisher "github.com/fixway/fixway-jobs-service/internal/infrastructure/kafka"
	biddto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/bid"
	"github.com/google/uuid"
)

// CounterOffer answers a pending bid with a new price. The counter supersedes
// the answered bid but keeps a link to it; chains never run in parallel.
func (uc *DefaultBidUsecase) CounterOffer(input *biddto.CounterOfferInput) (*biddto.BidOutput, error) {
	if input.NewPrice <= 0 {
		return nil, domain.NewValidationError("counter-offer price must be positive")
	}

	bid, err := uc.bidRepo.GetBidByID(input.BidID)
	if err != nil {
		return nil, err
	}
	job, err := uc.jobRepo.GetJobByID(bid.JobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != input.ClientID {
		return nil, domain.NewAuthorizationError("only the posting client may counter a bid")
	}
	if job.Status != domain.StatusNegotiationPending {
		return nil, domain.NewOperationStateError("counter offer", job.Status)
	}
	if !job.NegotiationOpen(time.Now()) {
		return nil, domain.NewConflictError("negotiation window has closed")
	}
	if bid.Status != domain.BidPending {
		return nil, domain.NewConflictError("bid is no longer open for a counter-offer")
	}

	counter := &domain.Bid{
		ID:             uuid.New().String(),
		JobID:          bid.JobID,
		ProviderID:     bid.ProviderID,
		OfferedPrice:   domain.Round2(input.NewPrice),
		Status:         domain.BidPending,
		IsCounterOffer: true,
		PreviousBidID:  bid.ID,
		RoundNumber:    bid.RoundNumber + 1,
		CreatedAt:      time.Now(),
	}

	rounds := job.NegotiationRounds + 1
	err = uc.bidRepo.CreateCounterOffer(counter, bid.ID,
		domain.JobUpdate{NegotiationRounds: &rounds},
		domain.StatusNegotiationPending,
	)
	if err != nil {
		return nil, err
	}

	uc.publishJobEvent(publisher.JobEvent{
		JobID:      job.ID,
		ClientID:   job.ClientID,
		ProviderID: bid.ProviderID,
		Status:     string(job.Status),
		Amount:     counter.OfferedPrice,
		Stage:      "counter_offer",
	})
	uc.notify(domain.Notification{
		ActorID:  bid.ProviderID,
		JobID:    job.ID,
		Type:     "COUNTER_OFFER",
		Title:    "Counter-offer received",
		Message:  "The client countered your bid with a new price.",
		Channels: []string{"push"},
	})

	return biddto.ToBidOutput(counter), nil
}
