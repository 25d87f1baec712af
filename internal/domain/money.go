package domain

import "math"

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PaymentSplit is the pure commission/hold arithmetic. ImmediateAmount is
// defined as the remainder, so the three parts always sum to TotalAmount
// exactly regardless of rounding.
type PaymentSplit struct {
	TotalAmount        float64
	CommissionRate     float64
	CommissionAmount   float64
	NetAmount          float64
	HoldPercentage     float64
	WarrantyHoldAmount float64
	ImmediateAmount    float64
}

func ComputePaymentSplit(totalAmount, commissionRate, holdPercentage float64) PaymentSplit {
	commission := Round2(totalAmount * commissionRate)
	net := Round2(totalAmount - commission)
	holdAmount := Round2(net * holdPercentage)
	immediate := Round2(net - holdAmount)

	return PaymentSplit{
		TotalAmount:        totalAmount,
		CommissionRate:     commissionRate,
		CommissionAmount:   commission,
		NetAmount:          net,
		HoldPercentage:     holdPercentage,
		WarrantyHoldAmount: holdAmount,
		ImmediateAmount:    immediate,
	}
}
