package usecase

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	trustdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/trust"
)

// One canonical scoring function for every role. Role only decides which
// history events feed the counters, never the coefficients.
const (
	weightCompletion = 45.0
	weightRating     = 35.0
	weightDisputes   = 20.0

	// Actors with no reviews yet score as a solid-but-unproven 4.0/5.
	neutralRating = 4.0

	repostExhaustionPenalty = 5.0
	suspensionFactor        = 0.5
)

func computeTrustScore(p *domain.TrustProfile) float64 {
	rating := p.AverageRating()
	if p.RatingCount == 0 {
		rating = neutralRating
	}

	score := p.CompletionRate()*weightCompletion +
		(rating/5.0)*weightRating +
		weightDisputes/(1.0+float64(p.DisputeCount))

	score -= p.PenaltyPoints
	if p.Suspended {
		score *= suspensionFactor
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return domain.Round2(score)
}

func riskLevelFor(trustScore float64) domain.RiskLevel {
	risk := 100 - trustScore
	switch {
	case risk >= 80:
		return domain.RiskCritical
	case risk >= 60:
		return domain.RiskHigh
	case risk >= 40:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

func (uc *DefaultTrustUsecase) RecalculateTrustScore(actorID string, role domain.Role) (*trustdto.TrustScoreOutput, error) {
	profile, err := uc.trustRepo.GetProfile(actorID, role)
	if err != nil {
		return nil, err
	}

	profile.TrustScore = computeTrustScore(profile)
	profile.RiskLevel = riskLevelFor(profile.TrustScore)
	profile.UpdatedAt = time.Now()

	if err := uc.trustRepo.SaveProfile(profile); err != nil {
		return nil, err
	}
	return trustdto.ToTrustScoreOutput(profile), nil
}

func (uc *DefaultTrustUsecase) RecordDisputeResolved(actorID string, role domain.Role) error {
	profile, err := uc.trustRepo.GetProfile(actorID, role)
	if err != nil {
		return err
	}
	profile.DisputeCount++
	if err := uc.trustRepo.SaveProfile(profile); err != nil {
		return err
	}
	_, err = uc.RecalculateTrustScore(actorID, role)
	return err
}

func (uc *DefaultTrustUsecase) ApplyRepostPenalty(clientID string) error {
	profile, err := uc.trustRepo.GetProfile(clientID, domain.RoleClient)
	if err != nil {
		return err
	}
	profile.PenaltyPoints += repostExhaustionPenalty
	if err := uc.trustRepo.SaveProfile(profile); err != nil {
		return err
	}
	_, err = uc.RecalculateTrustScore(clientID, domain.RoleClient)
	return err
}
