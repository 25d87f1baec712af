package usecase

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	publisher "github.com/fixway/fixway-jobs-service/internal/infrastructure/kafka"
	biddto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/bid"
)

// AcceptBid settles the negotiation. The client accepts a provider's original
// bid, or the provider accepts the client's counter-offer; either way the
// accepted offer (and the bid it answers, for a counter) is marked ACCEPTED,
// every other non-terminal bid is rejected, and the job's price locks, all in
// one transaction. Losing a concurrent acceptance race is a conflict, not a
// silent overwrite.
func (uc *DefaultBidUsecase) AcceptBid(input *biddto.AcceptBidInput) (*biddto.AcceptBidOutput, error) {
	bid, err := uc.bidRepo.GetBidByID(input.BidID)
	if err != nil {
		return nil, err
	}
	job, err := uc.jobRepo.GetJobByID(bid.JobID)
	if err != nil {
		return nil, err
	}

	if bid.IsCounterOffer {
		// Counter-offers belong to the client; the provider accepts them.
		if input.Actor.Role != domain.RoleProvider || input.Actor.ID != bid.ProviderID {
			return nil, domain.NewAuthorizationError("only the countered provider may accept this offer")
		}
	} else {
		if input.Actor.Role != domain.RoleClient || input.Actor.ID != job.ClientID {
			return nil, domain.NewAuthorizationError("only the posting client may accept a bid")
		}
	}

	if job.Status != domain.StatusNegotiationPending {
		return nil, domain.NewOperationStateError("accept bid", job.Status)
	}
	if !job.NegotiationOpen(time.Now()) {
		return nil, domain.NewConflictError("negotiation window has closed")
	}
	if bid.Status != domain.BidPending {
		return nil, domain.NewConflictError("bid is no longer open for acceptance")
	}

	acceptIDs := []string{bid.ID}
	if bid.IsCounterOffer && bid.PreviousBidID != "" {
		acceptIDs = append(acceptIDs, bid.PreviousBidID)
	}

	status := domain.StatusWaitingForPayment
	finalPrice := bid.OfferedPrice
	priceLocked := true
	providerID := bid.ProviderID
	paymentDeadline := time.Now().Add(uc.paymentWindow)
	deadlinePtr := &paymentDeadline

	err = uc.bidRepo.AcceptBids(&domain.BidAcceptance{
		JobID:          job.ID,
		ExpectedStatus: domain.StatusNegotiationPending,
		JobUpdate: domain.JobUpdate{
			Status:             &status,
			FinalPrice:         &finalPrice,
			PriceLocked:        &priceLocked,
			AssignedProviderID: &providerID,
			PaymentDeadline:    &deadlinePtr,
		},
		AcceptBidIDs: acceptIDs,
	})
	if err != nil {
		return nil, err
	}

	job.Status = status
	job.FinalPrice = finalPrice
	job.PriceLocked = true
	job.AssignedProviderID = providerID
	bid.Status = domain.BidAccepted

	if uc.metrics != nil {
		uc.metrics.BidsAcceptedTotal.Inc()
	}
	uc.publishJobEvent(publisher.JobEvent{
		JobID:      job.ID,
		ClientID:   job.ClientID,
		ProviderID: providerID,
		Status:     string(status),
		Amount:     finalPrice,
		Stage:      "bid_accepted",
	})
	uc.notify(domain.Notification{
		ActorID:  providerID,
		JobID:    job.ID,
		Type:     "BID_ACCEPTED",
		Title:    "Your offer was accepted",
		Message:  "The job is now awaiting payment.",
		Channels: []string{"push", "email"},
	})
	uc.notify(domain.Notification{
		ActorID:  job.ClientID,
		JobID:    job.ID,
		Type:     "PAYMENT_DUE",
		Title:    "Payment due",
		Message:  "Complete the payment to assign your provider.",
		Channels: []string{"push", "email"},
	})

	return biddto.NewAcceptBidOutput(job, bid), nil
}
