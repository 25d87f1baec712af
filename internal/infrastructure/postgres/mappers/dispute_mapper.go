package mappers

import (
	"github.com/fixway/fixway-jobs-service/internal/domain"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/postgres/models"
)

func ToDomainDispute(model *models.DisputeModel) *domain.Dispute {
	return &domain.Dispute{
		ID:           model.ID,
		JobID:        model.JobID,
		RaisedBy:     model.RaisedBy,
		RaisedByRole: model.RaisedByRole,
		Type:         model.Type,
		Status:       model.Status,
		Evidence:     model.Evidence,
		Reason:       model.Reason,
		Outcome:      model.Outcome,
		Resolution:   model.Resolution,
		ReviewBy:     model.ReviewBy,
		ResolvedAt:   model.ResolvedAt,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ToGORMDispute(dispute *domain.Dispute) *models.DisputeModel {
	return &models.DisputeModel{
		ID:           dispute.ID,
		JobID:        dispute.JobID,
		RaisedBy:     dispute.RaisedBy,
		RaisedByRole: dispute.RaisedByRole,
		Type:         dispute.Type,
		Status:       dispute.Status,
		Evidence:     dispute.Evidence,
		Reason:       dispute.Reason,
		Outcome:      dispute.Outcome,
		Resolution:   dispute.Resolution,
		ReviewBy:     dispute.ReviewBy,
		ResolvedAt:   dispute.ResolvedAt,
		CreatedAt:    dispute.CreatedAt,
		UpdatedAt:    dispute.UpdatedAt,
	}
}
