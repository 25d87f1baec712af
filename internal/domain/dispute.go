package domain

import "time"

type DisputeStatus string

const (
	DisputeOpen        DisputeStatus = "OPEN"
	DisputeUnderReview DisputeStatus = "UNDER_REVIEW"
	DisputeResolved    DisputeStatus = "RESOLVED"
)

type DisputeType string

const (
	DisputeQuality  DisputeType = "QUALITY"
	DisputeNoShow   DisputeType = "NO_SHOW"
	DisputeDamage   DisputeType = "DAMAGE"
	DisputeWarranty DisputeType = "WARRANTY"
)

type DisputeOutcome string

const (
	OutcomeProviderFavored DisputeOutcome = "PROVIDER_FAVORED"
	OutcomeClientFavored   DisputeOutcome = "CLIENT_FAVORED"
)

type Dispute struct {
	ID           string
	JobID        string
	RaisedBy     string
	RaisedByRole Role
	Type         DisputeType
	Status       DisputeStatus
	Evidence     string
	Reason       string
	Outcome      DisputeOutcome
	Resolution   string
	ReviewBy     time.Time
	ResolvedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type DisputeUpdate struct {
	Status     *DisputeStatus
	Outcome    *DisputeOutcome
	Resolution *string
	ResolvedAt **time.Time
}

type DisputeFilter struct {
	JobID  string
	Status string
	Page   int
	Limit  int
}

type DisputeRepository interface {
	// CreateDispute inserts the dispute and freezes the job's warranty hold
	// in one transaction.
	CreateDispute(dispute *Dispute, holdID string, guard HoldStatus, hold HoldUpdate) error
	GetDisputeByID(disputeID string) (*Dispute, error)
	GetOpenDisputeByJobID(jobID string) (*Dispute, error)
	UpdateDisputeStatus(disputeID string, status DisputeStatus) error
	// ResolveDispute records the outcome and unfreezes or releases the hold
	// atomically; ledger entries are written only on a client-favored release.
	ResolveDispute(disputeID string, update DisputeUpdate, holdID string, guard HoldStatus, hold HoldUpdate, entries []*LedgerEntry) error
	ListDisputes(filter DisputeFilter) ([]*Dispute, int64, error)
	FindReviewExpired(now time.Time) ([]*Dispute, error)
}
