package usecase

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	trustdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/trust"
)

type TrustUsecase interface {
	GetTrustScore(actorID string, role domain.Role) (*trustdto.TrustScoreOutput, error)
	RecalculateTrustScore(actorID string, role domain.Role) (*trustdto.TrustScoreOutput, error)
	AutoRulesFor(actorID string, role domain.Role) (*trustdto.AutoRules, error)

	// History counters. Only three triggers recompute the score:
	// rating mutation, dispute resolution, repost-exhaustion penalty.
	RecordCompletion(actorID string, role domain.Role) error
	RecordCancellation(actorID string, role domain.Role) error
	RecordRejection(providerID string) error
	RecordDisputeResolved(actorID string, role domain.Role) error
	ApplyRepostPenalty(clientID string) error
	SubmitReview(input *trustdto.SubmitReviewInput) error
}

type DefaultTrustUsecase struct {
	trustRepo domain.TrustRepository
}

func NewDefaultTrustUsecase(trustRepo domain.TrustRepository) *DefaultTrustUsecase {
	return &DefaultTrustUsecase{trustRepo: trustRepo}
}

func (uc *DefaultTrustUsecase) GetTrustScore(actorID string, role domain.Role) (*trustdto.TrustScoreOutput, error) {
	profile, err := uc.trustRepo.GetProfile(actorID, role)
	if err != nil {
		return nil, err
	}
	if profile.RiskLevel == "" {
		// Fresh profile, derive the score without persisting it.
		profile.TrustScore = computeTrustScore(profile)
		profile.RiskLevel = riskLevelFor(profile.TrustScore)
	}
	return trustdto.ToTrustScoreOutput(profile), nil
}

func (uc *DefaultTrustUsecase) RecordCompletion(actorID string, role domain.Role) error {
	profile, err := uc.trustRepo.GetProfile(actorID, role)
	if err != nil {
		return err
	}
	profile.CompletedJobs++
	profile.UpdatedAt = time.Now()
	return uc.trustRepo.SaveProfile(profile)
}

func (uc *DefaultTrustUsecase) RecordCancellation(actorID string, role domain.Role) error {
	profile, err := uc.trustRepo.GetProfile(actorID, role)
	if err != nil {
		return err
	}
	profile.CancelledJobs++
	profile.UpdatedAt = time.Now()
	return uc.trustRepo.SaveProfile(profile)
}

func (uc *DefaultTrustUsecase) RecordRejection(providerID string) error {
	profile, err := uc.trustRepo.GetProfile(providerID, domain.RoleProvider)
	if err != nil {
		return err
	}
	profile.RejectedBids++
	profile.UpdatedAt = time.Now()
	return uc.trustRepo.SaveProfile(profile)
}
