package mappers

import (
	"github.com/fixway/fixway-jobs-service/internal/domain"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/postgres/models"
)

func ToDomainTrustProfile(model *models.TrustProfileModel) *domain.TrustProfile {
	return &domain.TrustProfile{
		ActorID:       model.ActorID,
		Role:          model.Role,
		CompletedJobs: model.CompletedJobs,
		CancelledJobs: model.CancelledJobs,
		RatingSum:     model.RatingSum,
		RatingCount:   model.RatingCount,
		DisputeCount:  model.DisputeCount,
		RejectedBids:  model.RejectedBids,
		PenaltyPoints: model.PenaltyPoints,
		Suspended:     model.Suspended,
		TrustScore:    model.TrustScore,
		RiskLevel:     model.RiskLevel,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMTrustProfile(profile *domain.TrustProfile) *models.TrustProfileModel {
	return &models.TrustProfileModel{
		ActorID:       profile.ActorID,
		Role:          profile.Role,
		CompletedJobs: profile.CompletedJobs,
		CancelledJobs: profile.CancelledJobs,
		RatingSum:     profile.RatingSum,
		RatingCount:   profile.RatingCount,
		DisputeCount:  profile.DisputeCount,
		RejectedBids:  profile.RejectedBids,
		PenaltyPoints: profile.PenaltyPoints,
		Suspended:     profile.Suspended,
		TrustScore:    profile.TrustScore,
		RiskLevel:     profile.RiskLevel,
		UpdatedAt:     profile.UpdatedAt,
	}
}

func ToDomainReview(model *models.ReviewModel) *domain.Review {
	return &domain.Review{
		ID:        model.ID,
		JobID:     model.JobID,
		AuthorID:  model.AuthorID,
		SubjectID: model.SubjectID,
		Rating:    model.Rating,
		Comment:   model.Comment,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMReview(review *domain.Review) *models.ReviewModel {
	return &models.ReviewModel{
		ID:        review.ID,
		JobID:     review.JobID,
		AuthorID:  review.AuthorID,
		SubjectID: review.SubjectID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}
