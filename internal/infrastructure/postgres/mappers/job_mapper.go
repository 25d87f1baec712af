package mappers

import (
	"github.com/fixway/fixway-jobs-service/internal/domain"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/postgres/models"
)

func ToDomainJob(model *models.JobModel) *domain.Job {
	return &domain.Job{
		ID:                  model.ID,
		ClientID:            model.ClientID,
		AssignedProviderID:  model.AssignedProviderID,
		Title:               model.Title,
		Category:            model.Category,
		Region:              model.Region,
		Status:              model.Status,
		EstimatedCost:       model.EstimatedCost,
		FinalPrice:          model.FinalPrice,
		PriceLocked:         model.PriceLocked,
		NegotiationRounds:   model.NegotiationRounds,
		RepostCount:         model.RepostCount,
		MaxReposts:          model.MaxReposts,
		RecirculationCount:  model.RecirculationCount,
		LockedBy:            model.LockedBy,
		LockExpiresAt:       model.LockExpiresAt,
		NegotiationDeadline: model.NegotiationDeadline,
		PaymentDeadline:     model.PaymentDeadline,
		WarrantyDays:        model.WarrantyDays,
		CancelReason:        model.CancelReason,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func ToGORMJob(job *domain.Job) *models.JobModel {
	return &models.JobModel{
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
		RecirculationCount:  job.RecirculationCount,
		LockedBy:            job.LockedBy,
		LockExpiresAt:       job.LockExpiresAt,
		NegotiationDeadline: job.NegotiationDeadline,
		PaymentDeadline:     job.PaymentDeadline,
		WarrantyDays:        job.WarrantyDays,
		CancelReason:        job.CancelReason,
		CreatedAt:           job.CreatedAt,
		UpdatedAt:           job.UpdatedAt,
	}
}
