package usecase

import (
	"github.com/fixway/fixway-jobs-service/internal/domain"
	trustdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/trust"
)

// Risk-bucketed warranty hold percentages.
var holdPercentageByRisk = map[domain.RiskLevel]float64{
	domain.RiskLow:      0.10,
	domain.RiskMedium:   0.20,
	domain.RiskHigh:     0.35,
	domain.RiskCritical: 0.50,
}

func (uc *DefaultTrustUsecase) AutoRulesFor(actorID string, role domain.Role) (*trustdto.AutoRules, error) {
	profile, err := uc.trustRepo.GetProfile(actorID, role)
	if err != nil {
		return nil, err
	}

	level := profile.RiskLevel
	if level == "" {
		level = riskLevelFor(computeTrustScore(profile))
	}

	return &trustdto.AutoRules{
		HoldPercentage: holdPercentageByRisk[level],
		AutoFreeze:     level == domain.RiskCritical,
		AutoRejectBids: level == domain.RiskCritical || profile.Suspended,
	}, nil
}
