package usecase

import (
	"github.com/fixway/fixway-jobs-service/internal/domain"
	paymentdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/payment"
)

func (uc *DefaultPaymentUsecase) GetPaymentDetails(jobID string, actor domain.Actor) (*paymentdto.PaymentDetailsOutput, error) {
	job, err := uc.jobRepo.GetJobByID(jobID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleOperator && actor.ID != job.ClientID && actor.ID != job.AssignedProviderID {
		return nil, domain.NewAuthorizationError("not a party to this job's settlement")
	}

	payment, err := uc.paymentRepo.GetPaymentByJobID(jobID)
	if err != nil {
		return nil, err
	}
	entries, err := uc.paymentRepo.GetLedgerEntries(jobID)
	if err != nil {
		return nil, err
	}

	details := &paymentdto.PaymentDetailsOutput{
		Payment: paymentdto.ToPaymentOutput(payment),
		Entries: make([]*paymentdto.LedgerEntryOutput, len(entries)),
	}
	for i, entry := range entries {
		details.Entries[i] = paymentdto.ToLedgerEntryOutput(entry)
	}

	hold, err := uc.paymentRepo.GetHoldByJobID(jobID)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return details, nil
		}
		return nil, err
	}
	details.Hold = paymentdto.ToWarrantyHoldOutput(hold)
	return details, nil
}
