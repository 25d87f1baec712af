package models

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
)

type PaymentModel struct {
	ID                 string `gorm:"primaryKey;type:uuid"`
	JobID              string `gorm:"type:uuid;uniqueIndex:idx_payment_job"`
	TotalAmount        float64
	CommissionRate     float64
	CommissionAmount   float64
	HoldPercentage     float64
	ImmediateAmount    float64
	WarrantyHoldAmount float64
	Status             domain.PaymentStatus
	Method             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type LedgerEntryModel struct {
	ID          string             `gorm:"primaryKey"`
	JobID       string             `gorm:"type:uuid;index:idx_ledger_job"`
	Account     domain.AccountType `gorm:"index:idx_ledger_account"`
	EntryType   domain.EntryType
	Amount      float64
	Category    string
	Description string
	CreatedAt   time.Time
}

type WarrantyHoldModel struct {
	ID               string `gorm:"primaryKey;type:uuid"`
	JobID            string `gorm:"type:uuid;uniqueIndex:idx_hold_job"`
	ProviderID       string `gorm:"index:idx_hold_provider"`
	HoldAmount       float64
	HoldPercentage   float64
	WarrantyDays     int
	StartDate        time.Time
	EndDate          time.Time
	EffectiveEndDate time.Time         `gorm:"index:idx_hold_effective_end"`
	Status           domain.HoldStatus `gorm:"index:idx_hold_status"`
	IsFrozen         bool
	FrozenAt         *time.Time
	FreezeReason     string
	ReleasedAt       *time.Time
	ReleaseReason    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
