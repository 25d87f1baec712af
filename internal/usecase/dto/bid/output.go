package biddto

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
)

type BidOutput struct {
	ID             string           `json:"id"`
	JobID          string           `json:"job_id"`
	ProviderID     string           `json:"provider_id"`
	OfferedPrice   float64          `json:"offered_price"`
	Status         domain.BidStatus `json:"status"`
	IsCounterOffer bool             `json:"is_counter_offer"`
	PreviousBidID  string           `json:"previous_bid_id,omitempty"`
	RoundNumber    int              `json:"round_number"`
	CreatedAt      time.Time        `json:"created_at"`
}

func ToBidOutput(bid *domain.Bid) *BidOutput {
	return &BidOutput{
		ID:             bid.ID,
		JobID:          bid.JobID,
		ProviderID:     bid.ProviderID,
		OfferedPrice:   bid.OfferedPrice,
		Status:         bid.Status,
		IsCounterOffer: bid.IsCounterOffer,
		PreviousBidID:  bid.PreviousBidID,
		RoundNumber:    bid.RoundNumber,
		CreatedAt:      bid.CreatedAt,
	}
}

type AcceptBidOutput struct {
	Job *jobSummary `json:"job"`
	Bid *BidOutput  `json:"bid"`
}

type jobSummary struct {
	ID          string           `json:"id"`
	Status      domain.JobStatus `json:"status"`
	FinalPrice  float64          `json:"final_price"`
	PriceLocked bool             `json:"price_locked"`
}

func NewAcceptBidOutput(job *domain.Job, bid *domain.Bid) *AcceptBidOutput {
	return &AcceptBidOutput{
		Job: &jobSummary{
			ID:          job.ID,
			Status:      job.Status,
			FinalPrice:  job.FinalPrice,
			PriceLocked: job.PriceLocked,
		},
		Bid: ToBidOutput(bid),
	}
}
