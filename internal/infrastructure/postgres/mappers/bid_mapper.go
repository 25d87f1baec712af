package mappers

import (
	"github.com/fixway/fixway-jobs-service/internal/domain"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/postgres/models"
)

func ToDomainBid(model *models.BidModel) *domain.Bid {
	previousBidID := ""
	if model.PreviousBidID != nil {
		previousBidID = *model.PreviousBidID
	}
	return &domain.Bid{
		ID:             model.ID,
		JobID:          model.JobID,
		ProviderID:     model.ProviderID,
		OfferedPrice:   model.OfferedPrice,
		Status:         model.Status,
		IsCounterOffer: model.IsCounterOffer,
		PreviousBidID:  previousBidID,
		RoundNumber:    model.RoundNumber,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func ToGORMBid(bid *domain.Bid) *models.BidModel {
	// Original bids carry no previous bid, the uuid column stays NULL.
	var previousBidID *string
	if bid.PreviousBidID != "" {
		id := bid.PreviousBidID
		previousBidID = &id
	}
	return &models.BidModel{
		ID:             bid.ID,
		JobID:          bid.JobID,
		ProviderID:     bid.ProviderID,
		OfferedPrice:   bid.OfferedPrice,
		Status:         bid.Status,
		IsCounterOffer: bid.IsCounterOffer,
		PreviousBidID:  previousBidID,
		RoundNumber:    bid.RoundNumber,
		CreatedAt:      bid.CreatedAt,
		UpdatedAt:      bid.UpdatedAt,
	}
}
