package paymentdto

import "github.com/fixway/fixway-jobs-service/internal/domain"

// CreatePaymentSplitInput. Nil rate/hold/warranty fields are resolved by the
// usecase: rate from the commission rule service, hold percentage from the
// provider's risk auto-rule, warranty days from the job.
type CreatePaymentSplitInput struct {
	JobID          string
	Actor          domain.Actor
	Method         string
	CommissionRate *float64
	HoldPercentage *float64
	WarrantyDays   *int
}

type ReleaseHoldInput struct {
	HoldID string
	Actor  domain.Actor
	Reason string
}

type FreezeHoldInput struct {
	HoldID string
	Actor  domain.Actor
	Reason string
}
