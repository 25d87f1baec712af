package trustdto

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
)

type TrustScoreOutput struct {
	ActorID       string           `json:"actor_id"`
	Role          domain.Role      `json:"role"`
	TrustScore    float64          `json:"trust_score"`
	RiskLevel     domain.RiskLevel `json:"risk_level"`
	CompletedJobs int64            `json:"completed_jobs"`
	CancelledJobs int64            `json:"cancelled_jobs"`
	AverageRating float64          `json:"average_rating"`
	DisputeCount  int64            `json:"dispute_count"`
	Suspended     bool             `json:"suspended"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func ToTrustScoreOutput(p *domain.TrustProfile) *TrustScoreOutput {
	return &TrustScoreOutput{
		ActorID:       p.ActorID,
		Role:          p.Role,
		TrustScore:    p.TrustScore,
		RiskLevel:     p.RiskLevel,
		CompletedJobs: p.CompletedJobs,
		CancelledJobs: p.CancelledJobs,
		AverageRating: p.AverageRating(),
		DisputeCount:  p.DisputeCount,
		Suspended:     p.Suspended,
		UpdatedAt:     p.UpdatedAt,
	}
}

// AutoRules are the risk-driven knobs other subsystems consume.
type AutoRules struct {
	HoldPercentage float64 `json:"hold_percentage"`
	AutoFreeze     bool    `json:"auto_freeze"`
	AutoRejectBids bool    `json:"auto_reject_bids"`
}

type SubmitReviewInput struct {
	JobID     string
	Author    domain.Actor
	SubjectID string
	Rating    float64
	Comment   string
}
