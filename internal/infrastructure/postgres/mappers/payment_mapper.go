package mappers

import (
	"github.com/fixway/fixway-jobs-service/internal/domain"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/postgres/models"
)

func ToDomainPayment(model *models.PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID:                 model.ID,
		JobID:              model.JobID,
		TotalAmount:        model.TotalAmount,
		CommissionRate:     model.CommissionRate,
		CommissionAmount:   model.CommissionAmount,
		HoldPercentage:     model.HoldPercentage,
		ImmediateAmount:    model.ImmediateAmount,
		WarrantyHoldAmount: model.WarrantyHoldAmount,
		Status:             model.Status,
		Method:             model.Method,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

func ToGORMPayment(payment *domain.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:                 payment.ID,
		JobID:              payment.JobID,
		TotalAmount:        payment.TotalAmount,
		CommissionRate:     payment.CommissionRate,
		CommissionAmount:   payment.CommissionAmount,
		HoldPercentage:     payment.HoldPercentage,
		ImmediateAmount:    payment.ImmediateAmount,
		WarrantyHoldAmount: payment.WarrantyHoldAmount,
		Status:             payment.Status,
		Method:             payment.Method,
		CreatedAt:          payment.CreatedAt,
		UpdatedAt:          payment.UpdatedAt,
	}
}

func ToDomainLedgerEntry(model *models.LedgerEntryModel) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID:          model.ID,
		JobID:       model.JobID,
		Account:     model.Account,
		EntryType:   model.EntryType,
		Amount:      model.Amount,
		Category:    model.Category,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
	}
}

func ToGORMLedgerEntry(entry *domain.LedgerEntry) *models.LedgerEntryModel {
	return &models.LedgerEntryModel{
		ID:          entry.ID,
		JobID:       entry.JobID,
		Account:     entry.Account,
		EntryType:   entry.EntryType,
		Amount:      entry.Amount,
		Category:    entry.Category,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
	}
}

func ToDomainHold(model *models.WarrantyHoldModel) *domain.WarrantyHold {
	return &domain.WarrantyHold{
		ID:               model.ID,
		JobID:            model.JobID,
		ProviderID:       model.ProviderID,
		HoldAmount:       model.HoldAmount,
		HoldPercentage:   model.HoldPercentage,
		WarrantyDays:     model.WarrantyDays,
		StartDate:        model.StartDate,
		EndDate:          model.EndDate,
		EffectiveEndDate: model.EffectiveEndDate,
		Status:           model.Status,
		IsFrozen:         model.IsFrozen,
		FrozenAt:         model.FrozenAt,
		FreezeReason:     model.FreezeReason,
		ReleasedAt:       model.ReleasedAt,
		ReleaseReason:    model.ReleaseReason,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMHold(hold *domain.WarrantyHold) *models.WarrantyHoldModel {
	return &models.WarrantyHoldModel{
		ID:               hold.ID,
		JobID:            hold.JobID,
		ProviderID:       hold.ProviderID,
		HoldAmount:       hold.HoldAmount,
		HoldPercentage:   hold.HoldPercentage,
		WarrantyDays:     hold.WarrantyDays,
		StartDate:        hold.StartDate,
		EndDate:          hold.EndDate,
		EffectiveEndDate: hold.EffectiveEndDate,
		Status:           hold.Status,
		IsFrozen:         hold.IsFrozen,
		FrozenAt:         hold.FrozenAt,
		FreezeReason:     hold.FreezeReason,
		ReleasedAt:       hold.ReleasedAt,
		ReleaseReason:    hold.ReleaseReason,
		CreatedAt:        hold.CreatedAt,
		UpdatedAt:        hold.UpdatedAt,
	}
}
