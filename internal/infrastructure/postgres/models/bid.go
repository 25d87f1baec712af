package models

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
)

type BidModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	JobID          string `gorm:"type:uuid;index:idx_bid_job"`
	ProviderID     string `gorm:"index:idx_bid_provider"`
	OfferedPrice   float64
	Status         domain.BidStatus `gorm:"index:idx_bid_status"`
	IsCounterOffer bool
	// Nullable so original bids do not bind an empty string to the uuid column.
	PreviousBidID  *string `gorm:"type:uuid"`
	RoundNumber    int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
