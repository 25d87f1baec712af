package usecase

import (
	"context"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	publisher "github.com/fixway/fixway-jobs-service/internal/infrastructure/kafka"
	paymentdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/payment"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

// CreatePaymentSplit settles the client's escrow payment in one shot: commission
// to the platform, immediate payout to the provider, the rest locked under a
// warranty hold. The payment, its ledger entries, the hold and the job's move to
// ASSIGNED commit together or not at all.
func (uc *DefaultPaymentUsecase) CreatePaymentSplit(ctx context.Context, input *paymentdto.CreatePaymentSplitInput) (*paymentdto.PaymentDetailsOutput, error) {
	job, err := uc.jobRepo.GetJobByID(input.JobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != input.Actor.ID && input.Actor.Role != domain.RoleOperator {
		return nil, domain.NewAuthorizationError("only the posting client may pay for this job")
	}
	if job.Status != domain.StatusWaitingForPayment {
		return nil, domain.NewOperationStateError("payment split", job.Status)
	}
	if job.PaymentOverdue(time.Now()) {
		return nil, domain.NewConflictError("payment deadline has passed")
	}

	totalAmount := job.FinalPrice
	if totalAmount <= 0 {
		totalAmount = job.EstimatedCost
	}
	if totalAmount <= 0 {
		return nil, domain.NewValidationError("job has no price to settle")
	}

	commissionRate, err := uc.resolveCommissionRate(ctx, job, input.CommissionRate)
	if err != nil {
		return nil, err
	}
	holdPercentage, err := uc.resolveHoldPercentage(job.AssignedProviderID, input.HoldPercentage)
	if err != nil {
		return nil, err
	}
	warrantyDays := job.WarrantyDays
	if input.WarrantyDays != nil {
		warrantyDays = *input.WarrantyDays
	}
	if warrantyDays < 0 {
		return nil, domain.NewValidationError("warranty days must not be negative")
	}

	split := domain.ComputePaymentSplit(totalAmount, commissionRate, holdPercentage)

	now := time.Now()
	payment := &domain.Payment{
		ID:                 uuid.New().String(),
		JobID:              job.ID,
		TotalAmount:        split.TotalAmount,
		CommissionRate:     split.CommissionRate,
		CommissionAmount:   split.CommissionAmount,
		HoldPercentage:     split.HoldPercentage,
		ImmediateAmount:    split.ImmediateAmount,
		WarrantyHoldAmount: split.WarrantyHoldAmount,
		Status:             domain.PaymentEscrowHold,
		Method:             input.Method,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	entries, err := splitLedgerEntries(payment, job.Category, now)
	if err != nil {
		return nil, err
	}

	endDate := now.AddDate(0, 0, warrantyDays)
	hold := &domain.WarrantyHold{
		ID:               uuid.New().String(),
		JobID:            job.ID,
		ProviderID:       job.AssignedProviderID,
		HoldAmount:       split.WarrantyHoldAmount,
		HoldPercentage:   split.HoldPercentage,
		WarrantyDays:     warrantyDays,
		StartDate:        now,
		EndDate:          endDate,
		EffectiveEndDate: endDate,
		Status:           domain.HoldLocked,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	assigned := domain.StatusAssigned
	var noPaymentDeadline *time.Time
	if err := uc.paymentRepo.CreatePaymentSplit(payment, entries, hold, job.Status, domain.JobUpdate{
		Status:          &assigned,
		PaymentDeadline: &noPaymentDeadline,
	}); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PaymentsSplitTotal.Inc()
		uc.metrics.PaymentsSplitAmountTotal.Add(split.TotalAmount)
		uc.metrics.CommissionAmountTotal.Add(split.CommissionAmount)
		uc.metrics.WarrantyHeldAmountTotal.Add(split.WarrantyHoldAmount)
	}
	uc.publishSettlementEvent(publisher.SettlementEvent{
		JobID:              job.ID,
		PaymentID:          payment.ID,
		HoldID:             hold.ID,
		TotalAmount:        split.TotalAmount,
		CommissionAmount:   split.CommissionAmount,
		ImmediateAmount:    split.ImmediateAmount,
		WarrantyHoldAmount: split.WarrantyHoldAmount,
		Stage:              "payment_split",
	})
	uc.notify(domain.Notification{
		ActorID:  job.AssignedProviderID,
		JobID:    job.ID,
		Type:     "PAYMENT_RECEIVED",
		Title:    "Payment received, job assigned",
		Message:  "The client has paid. You can start the job.",
		Channels: []string{"push"},
	})

	outputs := make([]*paymentdto.LedgerEntryOutput, len(entries))
	for i, entry := range entries {
		outputs[i] = paymentdto.ToLedgerEntryOutput(entry)
	}
	return &paymentdto.PaymentDetailsOutput{
		Payment: paymentdto.ToPaymentOutput(payment),
		Entries: outputs,
		Hold:    paymentdto.ToWarrantyHoldOutput(hold),
	}, nil
}

// resolveCommissionRate prefers an explicit operator override, then the rule
// service. The rule service is a critical collaborator: a lookup failure aborts
// the split rather than guessing a rate.
func (uc *DefaultPaymentUsecase) resolveCommissionRate(ctx context.Context, job *domain.Job, override *float64) (float64, error) {
	if override != nil {
		if *override < 0 || *override >= 1 {
			return 0, domain.NewValidationError("commission rate must be in [0, 1)")
		}
		return *override, nil
	}
	rule, err := uc.commissionRules.Lookup(ctx, job.ID, job.Category, job.Region, job.ClientID)
	if err != nil {
		return 0, domain.NewDependencyError("commission rule lookup failed", err)
	}
	return rule.Rate, nil
}

func (uc *DefaultPaymentUsecase) resolveHoldPercentage(providerID string, override *float64) (float64, error) {
	if override != nil {
		if *override < 0 || *override > 1 {
			return 0, domain.NewValidationError("hold percentage must be in [0, 1]")
		}
		return *override, nil
	}
	rules, err := uc.trustUsecase.AutoRulesFor(providerID, domain.RoleProvider)
	if err != nil {
		return 0, err
	}
	return rules.HoldPercentage, nil
}

func splitLedgerEntries(payment *domain.Payment, category string, now time.Time) ([]*domain.LedgerEntry, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	return []*domain.LedgerEntry{
		{
			ID:          idGenerator(),
			JobID:       payment.JobID,
			Account:     domain.AccountPlatformCommission,
			EntryType:   domain.EntryCredit,
			Amount:      payment.CommissionAmount,
			Category:    category,
			Description: "platform commission",
			CreatedAt:   now,
		},
		{
			ID:          idGenerator(),
			JobID:       payment.JobID,
			Account:     domain.AccountProviderPayable,
			EntryType:   domain.EntryCredit,
			Amount:      payment.ImmediateAmount,
			Category:    category,
			Description: "immediate provider payout",
			CreatedAt:   now,
		},
		{
			ID:          idGenerator(),
			JobID:       payment.JobID,
			Account:     domain.AccountWarrantyHold,
			EntryType:   domain.EntryCredit,
			Amount:      payment.WarrantyHoldAmount,
			Category:    category,
			Description: "warranty hold",
			CreatedAt:   now,
		},
	}, nil
}
