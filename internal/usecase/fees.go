package usecase

import (
	"math"
	"math/bits"
)

const (
	bpsDenominator = 10_000
	secondsPerDay  = 86_400
)

// SplitFee computes fee = floor(amount * feeBps / 10000) with a 128-bit
// intermediate product, so the split never overflows for any uint64 amount.
// feeBps must not exceed 10000; fee + toRecipient == amount always holds.
func SplitFee(amount uint64, feeBps uint16) (fee, toRecipient uint64) {
	hi, lo := bits.Mul64(amount, uint64(feeBps))
	fee, _ = bits.Div64(hi, lo, bpsDenominator)
	return fee, amount - fee
}

func sameUTCDay(a, b int64) bool {
	return a/secondsPerDay == b/secondsPerDay
}

func saturatingAdd(a, b uint64) uint64 {
	if sum := a + b; sum >= a {
		return sum
	}
	return math.MaxUint64
}
