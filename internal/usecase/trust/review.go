package usecase

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	trustdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/trust"
	"github.com/google/uuid"
)

// SubmitReview records a rating for the counterparty of a completed job and
// recomputes their score. Rating mutation is one of the three recompute
// triggers.
func (uc *DefaultTrustUsecase) SubmitReview(input *trustdto.SubmitReviewInput) error {
	if input.Rating < 1 || input.Rating > 5 {
		return domain.NewValidationError("rating must be between 1 and 5")
	}
	if input.SubjectID == "" || input.JobID == "" {
		return domain.NewValidationError("job id and subject id are required")
	}
	if input.SubjectID == input.Author.ID {
		return domain.NewValidationError("cannot review yourself")
	}

	review := &domain.Review{
		ID:        uuid.New().String(),
		JobID:     input.JobID,
		AuthorID:  input.Author.ID,
		SubjectID: input.SubjectID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}
	if err := uc.trustRepo.CreateReview(review); err != nil {
		return err
	}

	subjectRole := domain.RoleProvider
	if input.Author.Role == domain.RoleProvider {
		subjectRole = domain.RoleClient
	}

	profile, err := uc.trustRepo.GetProfile(input.SubjectID, subjectRole)
	if err != nil {
		return err
	}
	profile.RatingSum += input.Rating
	profile.RatingCount++
	if err := uc.trustRepo.SaveProfile(profile); err != nil {
		return err
	}

	_, err = uc.RecalculateTrustScore(input.SubjectID, subjectRole)
	return err
}
