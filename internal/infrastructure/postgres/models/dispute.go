package models

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
)

type DisputeModel struct {
	ID           string               `gorm:"primaryKey"`
	JobID        string               `gorm:"type:uuid;index:idx_dispute_job"`
	RaisedBy     string
	RaisedByRole domain.Role
	Type         domain.DisputeType
	Status       domain.DisputeStatus `gorm:"index:idx_dispute_status_review"`
	Evidence     string
	Reason       string
	Outcome      domain.DisputeOutcome
	Resolution   string
	ReviewBy     time.Time `gorm:"index:idx_dispute_status_review"`
	ResolvedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
