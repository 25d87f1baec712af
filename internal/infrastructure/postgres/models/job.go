package models

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
)

type JobModel struct {
	ID                  string           `gorm:"primaryKey;type:uuid"`
	ClientID            string           `gorm:"index:idx_client"`
	AssignedProviderID  string           `gorm:"index:idx_provider"`
	Title               string
	Category            string           `gorm:"index:idx_category"`
	Region              string
	Status              domain.JobStatus `gorm:"index:idx_status_deadline"`
	EstimatedCost       float64
	FinalPrice          float64
	PriceLocked         bool
	NegotiationRounds   int
	RepostCount         int
	MaxReposts          int
	RecirculationCount  int
	LockedBy            string
	LockExpiresAt       *time.Time `gorm:"index:idx_lock_expires"`
	NegotiationDeadline time.Time  `gorm:"index:idx_status_deadline"`
	PaymentDeadline     *time.Time `gorm:"index:idx_payment_deadline"`
	WarrantyDays        int
	CancelReason        string
	CreatedAt           time.Time `gorm:"index:idx_created_at"`
	UpdatedAt           time.Time
}
