package domain

import "time"

type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// TrustProfile carries the derived 0-100 trust score for an actor plus the
// history counters it is computed from. The score is never set directly;
// RecalculateTrustScore is the only writer.
type TrustProfile struct {
	ActorID       string
	Role          Role
	CompletedJobs int64
	CancelledJobs int64
	RatingSum     float64
	RatingCount   int64
	DisputeCount  int64
	RejectedBids  int64
	PenaltyPoints float64
	Suspended     bool
	TrustScore    float64
	RiskLevel     RiskLevel
	UpdatedAt     time.Time
}

func (p *TrustProfile) CompletionRate() float64 {
	total := p.CompletedJobs + p.CancelledJobs
	if total == 0 {
		return 1.0
	}
	return float64(p.CompletedJobs) / float64(total)
}

func (p *TrustProfile) AverageRating() float64 {
	if p.RatingCount == 0 {
		return 0
	}
	return p.RatingSum / float64(p.RatingCount)
}

type Review struct {
	ID         string
	JobID      string
	AuthorID   string
	SubjectID  string
	Rating     float64
	Comment    string
	CreatedAt  time.Time
}

type TrustRepository interface {
	// GetProfile returns the actor's profile, creating a blank one when the
	// actor has no history yet. The score of a blank profile is derived
	// lazily by the caller.
	GetProfile(actorID string, role Role) (*TrustProfile, error)
	SaveProfile(profile *TrustProfile) error
	CreateReview(review *Review) error
	GetReviewsBySubject(subjectID string, limit int) ([]*Review, error)
}
