package domain

import "time"

type PaymentStatus string

const (
	PaymentEscrowHold PaymentStatus = "ESCROW_HOLD"
	PaymentReleased   PaymentStatus = "RELEASED"
)

type AccountType string

const (
	AccountPlatformCommission AccountType = "PLATFORM_COMMISSION"
	AccountProviderPayable    AccountType = "PROVIDER_PAYABLE"
	AccountWarrantyHold       AccountType = "WARRANTY_HOLD"
	AccountClientRefund       AccountType = "CLIENT_REFUND"
)

type EntryType string

const (
	EntryCredit EntryType = "CREDIT"
	EntryDebit  EntryType = "DEBIT"
)

type Payment struct {
	ID                 string
	JobID              string
	TotalAmount        float64
	CommissionRate     float64
	CommissionAmount   float64
	HoldPercentage     float64
	ImmediateAmount    float64
	WarrantyHoldAmount float64
	Status             PaymentStatus
	Method             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// LedgerEntry is immutable once written. Balances are reconstructed from
// entries, never mutated in place.
type LedgerEntry struct {
	ID          string
	JobID       string
	Account     AccountType
	EntryType   EntryType
	Amount      float64
	Category    string
	Description string
	CreatedAt   time.Time
}

type HoldStatus string

const (
	HoldLocked   HoldStatus = "LOCKED"
	HoldFrozen   HoldStatus = "FROZEN"
	HoldReleased HoldStatus = "RELEASED"
)

type WarrantyHold struct {
	ID             string
	JobID          string
	ProviderID     string
	HoldAmount     float64
	HoldPercentage float64
	WarrantyDays   int
	StartDate      time.Time
	EndDate        time.Time
	// EffectiveEndDate is EndDate pushed out by every freeze duration, so the
	// warranty window never counts down while frozen.
	EffectiveEndDate time.Time
	Status           HoldStatus
	IsFrozen         bool
	FrozenAt         *time.Time
	FreezeReason     string
	ReleasedAt       *time.Time
	ReleaseReason    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type HoldUpdate struct {
	Status           *HoldStatus
	IsFrozen         *bool
	FrozenAt         **time.Time
	FreezeReason     *string
	EffectiveEndDate *time.Time
	ReleasedAt       **time.Time
	ReleaseReason    *string
}

// AccountBalance is a per-job, per-account credit/debit rollup.
type AccountBalance struct {
	Account AccountType
	Credits float64
	Debits  float64
}

type PaymentRepository interface {
	// CreatePaymentSplit writes the payment, its ledger entries, the warranty
	// hold and the job transition as one transaction. A payment already
	// existing for the job returns a ConflictError and writes nothing.
	CreatePaymentSplit(payment *Payment, entries []*LedgerEntry, hold *WarrantyHold, expected JobStatus, jobUpdate JobUpdate) error
	GetPaymentByJobID(jobID string) (*Payment, error)
	GetLedgerEntries(jobID string) ([]*LedgerEntry, error)
	GetAccountBalances(jobID string) ([]*AccountBalance, error)
	GetHoldByID(holdID string) (*WarrantyHold, error)
	GetHoldByJobID(jobID string) (*WarrantyHold, error)
	// ReleaseHold applies the hold update, appends the balancing ledger
	// entries and flips the payment status in one transaction. The guard
	// status protects against a concurrent release.
	ReleaseHold(holdID string, guard HoldStatus, update HoldUpdate, entries []*LedgerEntry, paymentStatus PaymentStatus) error
	UpdateHold(holdID string, guard HoldStatus, update HoldUpdate) error
	FindReleasableHolds(now time.Time) ([]*WarrantyHold, error)
}
