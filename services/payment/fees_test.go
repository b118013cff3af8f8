package payment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storely/services/payment"
)

func TestComputeFeeSplit(t *testing.T) {
	type testCase struct {
		name            string
		totalPrice      float64
		feePercent      float64
		wantAmount      int64
		wantFee         int64
		wantTransferred float64
	}

	tests := []testCase{
		{
			name:       "DefaultThreePercent",
			totalPrice: 100.00, feePercent: 3,
			wantAmount: 10000, wantFee: 300, wantTransferred: 97.00,
		},
		{
			name:       "SubCentFeeRounds",
			totalPrice: 10.01, feePercent: 3,
			wantAmount: 1001, wantFee: 30, wantTransferred: 9.71,
		},
		{
			name:       "TinyAmount",
			totalPrice: 0.01, feePercent: 3,
			wantAmount: 1, wantFee: 0, wantTransferred: 0.01,
		},
		{
			name:       "ZeroFee",
			totalPrice: 250.50, feePercent: 0,
			wantAmount: 25050, wantFee: 0, wantTransferred: 250.50,
		},
		{
			name:       "FullFee",
			totalPrice: 42.00, feePercent: 100,
			wantAmount: 4200, wantFee: 4200, wantTransferred: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := payment.ComputeFeeSplit(tt.totalPrice, tt.feePercent)

			assert.Equal(t, tt.wantAmount, got.Amount)
			assert.Equal(t, tt.wantFee, got.PlatformFee)
			assert.InDelta(t, tt.wantTransferred, got.Transferred, 0.001)

			// Transferred plus the fee reconstructs the charged amount.
			assert.InDelta(t, float64(got.Amount)/100, got.Transferred+float64(got.PlatformFee)/100, 0.005)
		})
	}
}
