package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swiftment/payment-service/internal/domain"
	platformdto "github.com/swiftment/payment-service/internal/usecase/dto/platform"
)

func TestInitializePlatform(t *testing.T) {
	f := newFixture(t)

	cfg := f.initPlatform(t, 250, 500)
	require.Equal(t, testAuthority, cfg.Authority)
	require.Equal(t, testAssetID, cfg.AssetID)
	require.Equal(t, uint16(250), cfg.PurchaseFeeBps)
	require.Equal(t, uint16(500), cfg.WithdrawFeeBps)
	require.Equal(t, testFeeAccount, cfg.FeeAccount)

	stored, err := f.platformUC.GetConfig(context.Background())
	require.NoError(t, err)
	require.Equal(t, cfg.AssetID, stored.AssetID)
	require.Equal(t, cfg.PurchaseFeeBps, stored.PurchaseFeeBps)
}

func TestInitializePlatformBpsBounds(t *testing.T) {
	f := newFixture(t)

	// The denominator itself is a valid rate.
	f.initPlatform(t, 10_000, 0)

	f2 := newFixture(t)
	_, err := f2.platformUC.Initialize(context.Background(), &platformdto.InitializeInput{
		Authority:      testAuthority,
		AssetID:        testAssetID,
		PurchaseFeeBps: 10_001,
		WithdrawFeeBps: 0,
		FeeAccount:     testFeeAccount,
	})
	require.ErrorIs(t, err, domain.ErrInvalidBps)

	_, err = f2.platformUC.Initialize(context.Background(), &platformdto.InitializeInput{
		Authority:      testAuthority,
		AssetID:        testAssetID,
		PurchaseFeeBps: 0,
		WithdrawFeeBps: 10_001,
		FeeAccount:     testFeeAccount,
	})
	require.ErrorIs(t, err, domain.ErrInvalidBps)

	_, err = f2.platformUC.GetConfig(context.Background())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInitializePlatformTwice(t *testing.T) {
	f := newFixture(t)
	f.initPlatform(t, 250, 500)

	_, err := f.platformUC.Initialize(context.Background(), &platformdto.InitializeInput{
		Authority:      "someone-else",
		AssetID:        "other-asset",
		PurchaseFeeBps: 100,
		WithdrawFeeBps: 100,
		FeeAccount:     "other-account",
	})
	require.ErrorIs(t, err, domain.ErrAlreadyExists)

	// The original configuration is untouched.
	cfg, err := f.platformUC.GetConfig(context.Background())
	require.NoError(t, err)
	require.Equal(t, testAuthority, cfg.Authority)
	require.Equal(t, uint16(250), cfg.PurchaseFeeBps)
}

func TestInitializePlatformRequiredFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.platformUC.Initialize(context.Background(), &platformdto.InitializeInput{
		AssetID:    testAssetID,
		FeeAccount: testFeeAccount,
	})
	require.Error(t, err)

	_, err = f.platformUC.Initialize(context.Background(), &platformdto.InitializeInput{
		Authority:  testAuthority,
		FeeAccount: testFeeAccount,
	})
	require.Error(t, err)

	_, err = f.platformUC.Initialize(context.Background(), &platformdto.InitializeInput{
		Authority: testAuthority,
		AssetID:   testAssetID,
	})
	require.Error(t, err)
}

func TestGetConfigBeforeInitialize(t *testing.T) {
	f := newFixture(t)

	_, err := f.platformUC.GetConfig(context.Background())
	require.ErrorIs(t, err, domain.ErrNotFound)
}
