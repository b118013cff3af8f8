package payment

import "math"

// FeeSplit is the amount breakdown computed once at invoice-creation time.
type FeeSplit struct {
	Amount      int64   // amount charged to the renter, minor units
	PlatformFee int64   // marketplace cut, minor units
	Transferred float64 // paid out to the host, major units
}

// ComputeFeeSplit converts the booking total to minor units and carves out
// the platform fee. transferred + fee always reconstructs the charged amount
// within one minor unit of rounding.
func ComputeFeeSplit(totalPrice, feePercent float64) FeeSplit {
	amount := int64(math.Round(totalPrice * 100))
	fee := int64(math.Round(float64(amount) * feePercent / 100))
	return FeeSplit{
		Amount:      amount,
		PlatformFee: fee,
		Transferred: totalPrice - float64(fee)/100,
	}
}
