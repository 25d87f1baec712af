package disputedto

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
)

type DisputeOutput struct {
	ID           string                `json:"id"`
	JobID        string                `json:"job_id"`
	RaisedBy     string                `json:"raised_by"`
	RaisedByRole domain.Role           `json:"raised_by_role"`
	Type         domain.DisputeType    `json:"type"`
	Status       domain.DisputeStatus  `json:"status"`
	Evidence     string                `json:"evidence,omitempty"`
	Reason       string                `json:"reason"`
	Outcome      domain.DisputeOutcome `json:"outcome,omitempty"`
	Resolution   string                `json:"resolution,omitempty"`
	ReviewBy     time.Time             `json:"review_by"`
	ResolvedAt   *time.Time            `json:"resolved_at,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

func ToDisputeOutput(d *domain.Dispute) *DisputeOutput {
	return &DisputeOutput{
		ID:           d.ID,
		JobID:        d.JobID,
		RaisedBy:     d.RaisedBy,
		RaisedByRole: d.RaisedByRole,
		Type:         d.Type,
		Status:       d.Status,
		Evidence:     d.Evidence,
		Reason:       d.Reason,
		Outcome:      d.Outcome,
		Resolution:   d.Resolution,
		ReviewBy:     d.ReviewBy,
		ResolvedAt:   d.ResolvedAt,
		CreatedAt:    d.CreatedAt,
	}
}

type ListDisputesOutput struct {
	Disputes []*DisputeOutput `json:"disputes"`
	Total    int64            `json:"total"`
}
