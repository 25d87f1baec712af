package jobdto

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
)

type JobOutput struct {
	ID                  string           `json:"id"`
	ClientID            string           `json:"client_id"`
	AssignedProviderID  string           `json:"assigned_provider_id,omitempty"`
	Title               string           `json:"title"`
	Category            string           `json:"category"`
	Region              string           `json:"region"`
	Status              domain.JobStatus `json:"status"`
	EstimatedCost       float64          `json:"estimated_cost"`
	FinalPrice          float64          `json:"final_price,omitempty"`
	PriceLocked         bool             `json:"price_locked"`
	NegotiationRounds   int              `json:"negotiation_rounds"`
	RepostCount         int              `json:"repost_count"`
	MaxReposts          int              `json:"max_reposts"`
	LockedBy            string           `json:"locked_by,omitempty"`
	LockExpiresAt       *time.Time       `json:"lock_expires_at,omitempty"`
	NegotiationDeadline time.Time        `json:"negotiation_deadline"`
	PaymentDeadline     *time.Time       `json:"payment_deadline,omitempty"`
	WarrantyDays        int              `json:"warranty_days"`
	CancelReason        string           `json:"cancel_reason,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
}

func ToJobOutput(job *domain.Job) *JobOutput {
	return &JobOutput{
		ID:                  job.ID,
		ClientID:            job.ClientID,
		AssignedProviderID:  job.AssignedProviderID,
		Title:               job.Title,
		Category:            job.Category,
		Region:              job.Region,
		Status:              job.Status,
		EstimatedCost:       job.EstimatedCost,
		FinalPrice:          job.FinalPrice,
		PriceLocked:         job.PriceLocked,
		NegotiationRounds:   job.NegotiationRounds,
		RepostCount:         job.RepostCount,
		MaxReposts:          job.MaxReposts,
		LockedBy:            job.LockedBy,
		LockExpiresAt:       job.LockExpiresAt,
		NegotiationDeadline: job.NegotiationDeadline,
		PaymentDeadline:     job.PaymentDeadline,
		WarrantyDays:        job.WarrantyDays,
		CancelReason:        job.CancelReason,
		CreatedAt:           job.CreatedAt,
	}
}

type ListJobsOutput struct {
	Jobs  []*JobOutput `json:"jobs"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}
