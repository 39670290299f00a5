package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swiftment/payment-service/internal/domain"
	subscriptiondto "github.com/swiftment/payment-service/internal/usecase/dto/subscription"
)

func setupSubscriptionPair(t *testing.T, f *fixture) {
	t.Helper()
	f.initPlatform(t, 250, 500)
	f.registerMerchant(t, "coffee-shop")
	f.registerUser(t, "alice-wallet")
}

func TestOptIn(t *testing.T) {
	f := newFixture(t)
	setupSubscriptionPair(t, f)

	sub := f.optIn(t, "alice-wallet", "coffee-shop", 500_000)
	require.NotEmpty(t, sub.ID)
	require.Equal(t, uint64(500_000), sub.DailyLimit)
	require.Equal(t, uint64(0), sub.SpentToday)
	require.Equal(t, f.clock.now, sub.LastReset)
}

func TestOptInTwice(t *testing.T) {
	f := newFixture(t)
	setupSubscriptionPair(t, f)
	f.optIn(t, "alice-wallet", "coffee-shop", 500_000)

	_, err := f.subscriptionUC.OptIn(context.Background(), &subscriptiondto.OptInInput{
		UserOwner:         "alice-wallet",
		MerchantAuthority: "coffee-shop",
		DailyLimit:        100,
	})
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestOptInUnknownPair(t *testing.T) {
	f := newFixture(t)
	setupSubscriptionPair(t, f)

	_, err := f.subscriptionUC.OptIn(context.Background(), &subscriptiondto.OptInInput{
		UserOwner:         "nobody",
		MerchantAuthority: "coffee-shop",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.subscriptionUC.OptIn(context.Background(), &subscriptiondto.OptInInput{
		UserOwner:         "alice-wallet",
		MerchantAuthority: "no-such-shop",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetDailyLimit(t *testing.T) {
	f := newFixture(t)
	setupSubscriptionPair(t, f)
	sub := f.optIn(t, "alice-wallet", "coffee-shop", 500_000)

	// Simulate spending earlier in the day.
	f.setSpending(t, sub, 120_000, f.clock.now-100)

	err := f.subscriptionUC.SetDailyLimit(context.Background(), &subscriptiondto.SetDailyLimitInput{
		UserOwner:         "alice-wallet",
		MerchantAuthority: "coffee-shop",
		Caller:            "alice-wallet",
		NewLimit:          200_000,
	})
	require.NoError(t, err)

	// Only the cap changes; the counter keeps running for the current day.
	updated := f.getSubscription(t, sub.UserID, sub.MerchantID)
	require.Equal(t, uint64(200_000), updated.DailyLimit)
	require.Equal(t, uint64(120_000), updated.SpentToday)
	require.Equal(t, f.clock.now-100, updated.LastReset)
}

func TestSetDailyLimitWrongCaller(t *testing.T) {
	f := newFixture(t)
	setupSubscriptionPair(t, f)
	sub := f.optIn(t, "alice-wallet", "coffee-shop", 500_000)

	err := f.subscriptionUC.SetDailyLimit(context.Background(), &subscriptiondto.SetDailyLimitInput{
		UserOwner:         "alice-wallet",
		MerchantAuthority: "coffee-shop",
		Caller:            "mallory-wallet",
		NewLimit:          0,
	})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	unchanged := f.getSubscription(t, sub.UserID, sub.MerchantID)
	require.Equal(t, uint64(500_000), unchanged.DailyLimit)
}

func TestGetSubscriptionStatus(t *testing.T) {
	f := newFixture(t)
	setupSubscriptionPair(t, f)
	sub := f.optIn(t, "alice-wallet", "coffee-shop", 500_000)
	f.setSpending(t, sub, 120_000, f.clock.now)

	status, err := f.subscriptionUC.GetSubscriptionStatus(context.Background(), "alice-wallet", "coffee-shop")
	require.NoError(t, err)
	require.Equal(t, uint64(120_000), status.SpentToday)
	require.Equal(t, uint64(380_000), status.Remaining)
	require.False(t, status.Unlimited)
}

func TestGetSubscriptionStatusStaleDay(t *testing.T) {
	f := newFixture(t)
	setupSubscriptionPair(t, f)
	sub := f.optIn(t, "alice-wallet", "coffee-shop", 500_000)
	f.setSpending(t, sub, 499_000, f.clock.now-2*secondsPerDay)

	status, err := f.subscriptionUC.GetSubscriptionStatus(context.Background(), "alice-wallet", "coffee-shop")
	require.NoError(t, err)
	require.Equal(t, uint64(0), status.SpentToday)
	require.Equal(t, uint64(500_000), status.Remaining)

	// The read does not persist the rollover.
	stored := f.getSubscription(t, sub.UserID, sub.MerchantID)
	require.Equal(t, uint64(499_000), stored.SpentToday)
}

func TestGetSubscriptionStatusUnlimited(t *testing.T) {
	f := newFixture(t)
	setupSubscriptionPair(t, f)
	f.optIn(t, "alice-wallet", "coffee-shop", 0)

	status, err := f.subscriptionUC.GetSubscriptionStatus(context.Background(), "alice-wallet", "coffee-shop")
	require.NoError(t, err)
	require.True(t, status.Unlimited)
	require.Equal(t, uint64(0), status.Remaining)
}

func TestGetSubscriptionStatusNotFound(t *testing.T) {
	f := newFixture(t)
	setupSubscriptionPair(t, f)

	_, err := f.subscriptionUC.GetSubscriptionStatus(context.Background(), "alice-wallet", "coffee-shop")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
