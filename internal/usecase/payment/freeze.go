package usecase

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	paymentdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/payment"
)

// FreezeWarrantyHold stops the warranty clock on a locked hold. Freezing
// normally happens inside dispute creation; this is the operator's manual
// handle for holds that need investigation without a formal dispute.
func (uc *DefaultPaymentUsecase) FreezeWarrantyHold(input *paymentdto.FreezeHoldInput) (*paymentdto.WarrantyHoldOutput, error) {
	if input.Actor.Role != domain.RoleOperator {
		return nil, domain.NewAuthorizationError("only operators may freeze a warranty hold")
	}

	hold, err := uc.paymentRepo.GetHoldByID(input.HoldID)
	if err != nil {
		return nil, err
	}
	switch hold.Status {
	case domain.HoldReleased:
		return nil, domain.NewConflictError("warranty hold is already released")
	case domain.HoldFrozen:
		return nil, domain.NewConflictError("warranty hold is already frozen")
	}

	now := time.Now()
	frozen := domain.HoldFrozen
	isFrozen := true
	frozenAt := &now
	if err := uc.paymentRepo.UpdateHold(hold.ID, domain.HoldLocked, domain.HoldUpdate{
		Status:       &frozen,
		IsFrozen:     &isFrozen,
		FrozenAt:     &frozenAt,
		FreezeReason: &input.Reason,
	}); err != nil {
		return nil, err
	}

	hold.Status = frozen
	hold.IsFrozen = true
	hold.FrozenAt = &now
	hold.FreezeReason = input.Reason

	if uc.metrics != nil {
		uc.metrics.HoldsFrozenTotal.Inc()
	}
	uc.notify(domain.Notification{
		ActorID:  hold.ProviderID,
		JobID:    hold.JobID,
		Type:     "HOLD_FROZEN",
		Title:    "Warranty hold frozen",
		Message:  "Your warranty hold was frozen pending review. The warranty clock is paused.",
		Channels: []string{"push"},
	})
	return paymentdto.ToWarrantyHoldOutput(hold), nil
}
