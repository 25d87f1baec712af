package models

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
)

type TrustProfileModel struct {
	ActorID       string      `gorm:"primaryKey"`
	Role          domain.Role `gorm:"primaryKey"`
	CompletedJobs int64
	CancelledJobs int64
	RatingSum     float64
	RatingCount   int64
	DisputeCount  int64
	RejectedBids  int64
	PenaltyPoints float64
	Suspended     bool
	TrustScore    float64
	RiskLevel     domain.RiskLevel
	UpdatedAt     time.Time
}

type ReviewModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	JobID     string `gorm:"type:uuid;index:idx_review_job"`
	AuthorID  string
	SubjectID string `gorm:"index:idx_review_subject"`
	Rating    float64
	Comment   string
	CreatedAt time.Time
}
