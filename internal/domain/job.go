package domain

import "time"

type JobStatus string

const (
	StatusPending                   JobStatus = "PENDING"
	StatusSoftLocked                JobStatus = "SOFT_LOCKED"
	StatusNegotiationPending        JobStatus = "NEGOTIATION_PENDING"
	StatusWaitingForPayment         JobStatus = "WAITING_FOR_PAYMENT"
	StatusAssigned                  JobStatus = "ASSIGNED"
	StatusInProgress                JobStatus = "IN_PROGRESS"
	StatusCompletionPendingApproval JobStatus = "COMPLETION_PENDING_APPROVAL"
	StatusCompleted                 JobStatus = "COMPLETED"
	StatusCancelled                 JobStatus = "CANCELLED"
)

// jobTransitions is the single source of truth for legal status changes.
// Anything not listed here fails with a StateError.
var jobTransitions = map[JobStatus][]JobStatus{
	StatusPending:                   {StatusSoftLocked, StatusNegotiationPending, StatusWaitingForPayment, StatusCancelled},
	StatusSoftLocked:                {StatusWaitingForPayment, StatusPending, StatusCancelled},
	StatusNegotiationPending:        {StatusWaitingForPayment, StatusPending, StatusCancelled},
	StatusWaitingForPayment:         {StatusAssigned, StatusPending, StatusCancelled},
	StatusAssigned:                  {StatusInProgress, StatusCancelled},
	StatusInProgress:                {StatusCompletionPendingApproval, StatusCancelled},
	StatusCompletionPendingApproval: {StatusCompleted, StatusInProgress, StatusCancelled},
	StatusCompleted:                 {},
	StatusCancelled:                 {},
}

func CanTransition(from, to JobStatus) bool {
	for _, next := range jobTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func IsTerminalStatus(s JobStatus) bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Job struct {
	ID                  string
	ClientID            string
	AssignedProviderID  string
	Title               string
	Category            string
	Region              string
	Status              JobStatus
	EstimatedCost       float64
	FinalPrice          float64
	PriceLocked         bool
	NegotiationRounds   int
	RepostCount         int
	MaxReposts          int
	RecirculationCount  int
	LockedBy            string
	LockExpiresAt       *time.Time
	NegotiationDeadline time.Time
	PaymentDeadline     *time.Time
	WarrantyDays        int
	CancelReason        string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// SoftLockActive reports whether the job currently holds a live soft lock.
// Expired locks are treated as absent; the sweep reclaims them later.
func (j *Job) SoftLockActive(now time.Time) bool {
	return j.Status == StatusSoftLocked && j.LockExpiresAt != nil && j.LockExpiresAt.After(now)
}

// NegotiationOpen reports whether offers may still be placed or settled.
// A zero deadline means the job never entered a timed negotiation window.
func (j *Job) NegotiationOpen(now time.Time) bool {
	return j.NegotiationDeadline.IsZero() || j.NegotiationDeadline.After(now)
}

// PaymentOverdue reports whether the payment window has closed. Overdue jobs
// are refused on access; the sweep reposts them later.
func (j *Job) PaymentOverdue(now time.Time) bool {
	return j.PaymentDeadline != nil && !j.PaymentDeadline.After(now)
}

// JobUpdate describes the fields a single transition is allowed to touch.
// Nil fields are left untouched by the repository.
type JobUpdate struct {
	Status              *JobStatus
	AssignedProviderID  *string
	FinalPrice          *float64
	PriceLocked         *bool
	NegotiationRounds   *int
	RepostCount         *int
	RecirculationCount  *int
	LockedBy            *string
	LockExpiresAt       **time.Time
	NegotiationDeadline *time.Time
	PaymentDeadline     **time.Time
	CancelReason        *string
}

type JobFilter struct {
	ClientID   string
	ProviderID string
	Status     string
	Category   string
	Region     string
	Page       int
	Limit      int
}

type JobStatistics struct {
	TotalJobs      int64
	CompletedJobs  int64
	CancelledJobs  int64
	SettledAmount  float64
	AverageJobCost float64
}

type JobRepository interface {
	CreateJob(job *Job) error
	GetJobByID(jobID string) (*Job, error)
	// TransitionJob applies update only while the job still sits in expected
	// status. A stale precondition returns a ConflictError.
	TransitionJob(jobID string, expected JobStatus, update JobUpdate) error
	ListJobs(filter JobFilter) ([]*Job, int64, error)
	FindExpiredSoftLocks(now time.Time) ([]*Job, error)
	FindNegotiationExpired(now time.Time) ([]*Job, error)
	FindPaymentExpired(now time.Time) ([]*Job, error)
	GetJobStatistics(actorID string, dateFrom, dateTo time.Time) (*JobStatistics, error)
}
