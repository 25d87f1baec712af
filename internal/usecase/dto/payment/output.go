package paymentdto

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
)

type PaymentOutput struct {
	ID                 string               `json:"id"`
	JobID              string               `json:"job_id"`
	TotalAmount        float64              `json:"total_amount"`
	CommissionRate     float64              `json:"commission_rate"`
	CommissionAmount   float64              `json:"commission_amount"`
	HoldPercentage     float64              `json:"hold_percentage"`
	ImmediateAmount    float64              `json:"immediate_amount"`
	WarrantyHoldAmount float64              `json:"warranty_hold_amount"`
	Status             domain.PaymentStatus `json:"status"`
	Method             string               `json:"method"`
	CreatedAt          time.Time            `json:"created_at"`
}

type LedgerEntryOutput struct {
	ID          string             `json:"id"`
	JobID       string             `json:"job_id"`
	Account     domain.AccountType `json:"account"`
	EntryType   domain.EntryType   `json:"entry_type"`
	Amount      float64            `json:"amount"`
	Category    string             `json:"category"`
	Description string             `json:"description"`
	CreatedAt   time.Time          `json:"created_at"`
}

type WarrantyHoldOutput struct {
	ID               string            `json:"id"`
	JobID            string            `json:"job_id"`
	ProviderID       string            `json:"provider_id"`
	HoldAmount       float64           `json:"hold_amount"`
	HoldPercentage   float64           `json:"hold_percentage"`
	WarrantyDays     int               `json:"warranty_days"`
	StartDate        time.Time         `json:"start_date"`
	EndDate          time.Time         `json:"end_date"`
	EffectiveEndDate time.Time         `json:"effective_end_date"`
	Status           domain.HoldStatus `json:"status"`
	IsFrozen         bool              `json:"is_frozen"`
	FreezeReason     string            `json:"freeze_reason,omitempty"`
	ReleasedAt       *time.Time        `json:"released_at,omitempty"`
}

type PaymentDetailsOutput struct {
	Payment *PaymentOutput       `json:"payment"`
	Entries []*LedgerEntryOutput `json:"ledger_entries"`
	Hold    *WarrantyHoldOutput  `json:"warranty_hold,omitempty"`
}

func ToPaymentOutput(p *domain.Payment) *PaymentOutput {
	return &PaymentOutput{
		ID:                 p.ID,
		JobID:              p.JobID,
		TotalAmount:        p.TotalAmount,
		CommissionRate:     p.CommissionRate,
		CommissionAmount:   p.CommissionAmount,
		HoldPercentage:     p.HoldPercentage,
		ImmediateAmount:    p.ImmediateAmount,
		WarrantyHoldAmount: p.WarrantyHoldAmount,
		Status:             p.Status,
		Method:             p.Method,
		CreatedAt:          p.CreatedAt,
	}
}

func ToLedgerEntryOutput(e *domain.LedgerEntry) *LedgerEntryOutput {
	return &LedgerEntryOutput{
		ID:          e.ID,
		JobID:       e.JobID,
		Account:     e.Account,
		EntryType:   e.EntryType,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func ToWarrantyHoldOutput(h *domain.WarrantyHold) *WarrantyHoldOutput {
	return &WarrantyHoldOutput{
		ID:               h.ID,
		JobID:            h.JobID,
		ProviderID:       h.ProviderID,
		HoldAmount:       h.HoldAmount,
		HoldPercentage:   h.HoldPercentage,
		WarrantyDays:     h.WarrantyDays,
		StartDate:        h.StartDate,
		EndDate:          h.EndDate,
		EffectiveEndDate: h.EffectiveEndDate,
		Status:           h.Status,
		IsFrozen:         h.IsFrozen,
		FreezeReason:     h.FreezeReason,
		ReleasedAt:       h.ReleasedAt,
	}
}
