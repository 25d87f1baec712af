package domain

import "testing"

func TestComputePaymentSplit(t *testing.T) {
	cases := []struct {
		name           string
		total          float64
		rate           float64
		holdPct        float64
		wantCommission float64
		wantHold       float64
		wantImmediate  float64
	}{
		{
			name:  "reference split",
			total: 10000, rate: 0.05, holdPct: 0.20,
			wantCommission: 500, wantHold: 1900, wantImmediate: 7600,
		},
		{
			name:  "zero hold",
			total: 1000, rate: 0.10, holdPct: 0,
			wantCommission: 100, wantHold: 0, wantImmediate: 900,
		},
		{
			name:  "zero commission",
			total: 2500, rate: 0, holdPct: 0.50,
			wantCommission: 0, wantHold: 1250, wantImmediate: 1250,
		},
		{
			name:  "awkward rounding",
			total: 99.99, rate: 0.333, holdPct: 0.20,
			wantCommission: 33.30, wantHold: 13.34, wantImmediate: 53.35,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			split := ComputePaymentSplit(tc.total, tc.rate, tc.holdPct)
			if split.CommissionAmount != tc.wantCommission {
				t.Errorf("commission = %v, want %v", split.CommissionAmount, tc.wantCommission)
			}
			if split.WarrantyHoldAmount != tc.wantHold {
				t.Errorf("hold = %v, want %v", split.WarrantyHoldAmount, tc.wantHold)
			}
			if split.ImmediateAmount != tc.wantImmediate {
				t.Errorf("immediate = %v, want %v", split.ImmediateAmount, tc.wantImmediate)
			}

			sum := Round2(split.CommissionAmount + split.WarrantyHoldAmount + split.ImmediateAmount)
			if sum != tc.total {
				t.Errorf("parts sum to %v, want exactly %v", sum, tc.total)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(10.006); got != 10.01 {
		t.Errorf("Round2(10.006) = %v, want 10.01", got)
	}
	if got := Round2(10.004); got != 10.0 {
		t.Errorf("Round2(10.004) = %v, want 10.0", got)
	}
}
