package jobdto

import "github.com/fixway/fixway-jobs-service/internal/domain"

type PostJobInput struct {
	ClientID            string
	Title               string
	Category            string
	Region              string
	EstimatedCost       float64
	WarrantyDays        int
	MaxReposts          int
	NegotiationDeadline int // minutes from now; 0 means the configured default
}

type SoftLockInput struct {
	JobID      string
	ProviderID string
}

// ConfirmSoftLockInput converts a live soft lock into a firm assignment at
// the estimated cost.
type ConfirmSoftLockInput struct {
	JobID    string
	ClientID string
}

type RepostInput struct {
	JobID string
	Actor domain.Actor
	// Reason distinguishes negotiation timeouts from payment timeouts in the
	// audit trail.
	Reason string
}

type StartJobInput struct {
	JobID      string
	ProviderID string
}

type CompleteJobInput struct {
	JobID      string
	ProviderID string
}

type ApproveCompletionInput struct {
	JobID    string
	ClientID string
}

type RejectCompletionInput struct {
	JobID    string
	ClientID string
	Reason   string
}

type CancelJobInput struct {
	JobID  string
	Actor  domain.Actor
	Reason string
}
