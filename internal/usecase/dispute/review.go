package usecase

import (
	"github.com/fixway/fixway-jobs-service/internal/domain"
	disputedto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/dispute"
)

// ReviewDispute marks an open dispute as taken by an operator.
func (uc *DefaultDisputeUsecase) ReviewDispute(input *disputedto.ReviewDisputeInput) (*disputedto.DisputeOutput, error) {
	dispute, err := uc.disputeRepo.GetDisputeByID(input.DisputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Status != domain.DisputeOpen {
		return nil, domain.NewConflictError("dispute is not open for review")
	}

	if err := uc.disputeRepo.UpdateDisputeStatus(dispute.ID, domain.DisputeUnderReview); err != nil {
		return nil, err
	}
	dispute.Status = domain.DisputeUnderReview

	return disputedto.ToDisputeOutput(dispute), nil
}

func (uc *DefaultDisputeUsecase) GetDisputeByID(disputeID string) (*disputedto.DisputeOutput, error) {
	dispute, err := uc.disputeRepo.GetDisputeByID(disputeID)
	if err != nil {
		return nil, err
	}
	return disputedto.ToDisputeOutput(dispute), nil
}

func (uc *DefaultDisputeUsecase) ListDisputes(filter domain.DisputeFilter) (*disputedto.ListDisputesOutput, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	disputes, total, err := uc.disputeRepo.ListDisputes(filter)
	if err != nil {
		return nil, err
	}
	output := &disputedto.ListDisputesOutput{
		Disputes: make([]*disputedto.DisputeOutput, len(disputes)),
		Total:    total,
	}
	for i, dispute := range disputes {
		output.Disputes[i] = disputedto.ToDisputeOutput(dispute)
	}
	return output, nil
}
