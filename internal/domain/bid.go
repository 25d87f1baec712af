package domain

import "time"

type BidStatus string

const (
	BidPending   BidStatus = "PENDING"
	BidCountered BidStatus = "COUNTERED"
	BidAccepted  BidStatus = "ACCEPTED"
	BidRejected  BidStatus = "REJECTED"
)

func IsTerminalBidStatus(s BidStatus) bool {
	return s == BidAccepted || s == BidRejected
}

type Bid struct {
	ID             string
	JobID          string
	ProviderID     string
	OfferedPrice   float64
	Status         BidStatus
	IsCounterOffer bool
	// PreviousBidID links a counter-offer to the bid it answers.
	PreviousBidID string
	RoundNumber   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BidAcceptance is the atomic unit of an acceptance: the job moves to
// WAITING_FOR_PAYMENT, every listed bid becomes ACCEPTED and every other
// non-terminal bid on the job becomes REJECTED in the same transaction.
type BidAcceptance struct {
	JobID          string
	ExpectedStatus JobStatus
	JobUpdate      JobUpdate
	AcceptBidIDs   []string
}

type BidRepository interface {
	CreateBid(bid *Bid) error
	GetBidByID(bidID string) (*Bid, error)
	GetBidsByJobID(jobID string) ([]*Bid, error)
	// GetActiveOriginalBid returns the provider's non-terminal original bid
	// on the job, or a NotFoundError when none exists.
	GetActiveOriginalBid(jobID, providerID string) (*Bid, error)
	UpdateBidStatus(bidID string, status BidStatus) error
	// CreateCounterOffer marks the answered bid COUNTERED and inserts the
	// counter row in one transaction.
	CreateCounterOffer(counter *Bid, answeredBidID string, jobUpdate JobUpdate, expected JobStatus) error
	AcceptBids(acceptance *BidAcceptance) error
	CountPendingBids(jobID string) (int64, error)
}
