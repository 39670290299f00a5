package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitFee(t *testing.T) {
	testCases := []struct {
		name     string
		amount   uint64
		bps      uint16
		wantFee  uint64
		wantRest uint64
	}{
		{name: "typical", amount: 1_000_000, bps: 250, wantFee: 25_000, wantRest: 975_000},
		{name: "zero bps", amount: 200_000, bps: 0, wantFee: 0, wantRest: 200_000},
		{name: "zero amount", amount: 0, bps: 500, wantFee: 0, wantRest: 0},
		{name: "full bps", amount: 1_000_000, bps: 10_000, wantFee: 1_000_000, wantRest: 0},
		{name: "rounds down", amount: 999, bps: 250, wantFee: 24, wantRest: 975},
		{name: "tiny amount", amount: 3, bps: 1, wantFee: 0, wantRest: 3},
		{name: "max amount full bps", amount: math.MaxUint64, bps: 10_000, wantFee: math.MaxUint64, wantRest: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fee, rest := SplitFee(tc.amount, tc.bps)
			require.Equal(t, tc.wantFee, fee)
			require.Equal(t, tc.wantRest, rest)
		})
	}
}

func TestSplitFeePreservesAmount(t *testing.T) {
	amounts := []uint64{0, 1, 999, 1_000_000, math.MaxUint64 / 2, math.MaxUint64}
	bpsValues := []uint16{0, 1, 250, 9_999, 10_000}

	for _, amount := range amounts {
		for _, bps := range bpsValues {
			fee, rest := SplitFee(amount, bps)
			require.Equal(t, amount, fee+rest, "amount=%d bps=%d", amount, bps)
			require.LessOrEqual(t, fee, amount, "amount=%d bps=%d", amount, bps)
		}
	}
}

func TestSameUTCDay(t *testing.T) {
	require.True(t, sameUTCDay(0, 0))
	require.True(t, sameUTCDay(0, secondsPerDay-1))
	require.False(t, sameUTCDay(secondsPerDay-1, secondsPerDay))
	require.True(t, sameUTCDay(1_700_000_000, 1_700_000_500))
	require.False(t, sameUTCDay(1_700_000_000, 1_700_000_000+secondsPerDay))
}

func TestSaturatingAdd(t *testing.T) {
	require.Equal(t, uint64(5), saturatingAdd(2, 3))
	require.Equal(t, uint64(math.MaxUint64), saturatingAdd(math.MaxUint64, 1))
	require.Equal(t, uint64(math.MaxUint64), saturatingAdd(math.MaxUint64-1, 10))
	require.Equal(t, uint64(math.MaxUint64), saturatingAdd(math.MaxUint64, 0))
}
