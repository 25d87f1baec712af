package biddto

import "github.com/fixway/fixway-jobs-service/internal/domain"

type PlaceBidInput struct {
	JobID        string
	ProviderID   string
	OfferedPrice float64
}

type CounterOfferInput struct {
	BidID    string
	ClientID string
	NewPrice float64
}

// AcceptBidInput covers both acceptance directions: the client accepting a
// provider bid and the provider accepting the client's counter-offer.
type AcceptBidInput struct {
	BidID string
	Actor domain.Actor
}

// RejectBidInput covers both rejection directions: the client declining a
// provider bid and the countered provider declining the client's counter-offer.
type RejectBidInput struct {
	BidID  string
	Actor  domain.Actor
	Reason string
}
