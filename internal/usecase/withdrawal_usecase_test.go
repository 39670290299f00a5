package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swiftment/payment-service/internal/domain"
	paymentdto "github.com/swiftment/payment-service/internal/usecase/dto/payment"
)

func setupWithdrawalScene(t *testing.T, f *fixture, withdrawFeeBps uint16) *domain.Treasury {
	t.Helper()
	f.initPlatform(t, 250, withdrawFeeBps)
	out := f.registerMerchant(t, "coffee-shop")
	return out.Treasury
}

func withdraw(f *fixture, amount uint64, caller string) (*domain.WithdrawEvent, error) {
	return f.withdrawalUC.Withdraw(context.Background(), &paymentdto.WithdrawInput{
		MerchantAuthority: "coffee-shop",
		Amount:            amount,
		Caller:            caller,
	})
}

func TestWithdraw(t *testing.T) {
	f := newFixture(t)
	treasury := setupWithdrawalScene(t, f, 500)
	merchantWallet := f.deriver.Derive("coffee-shop", testAssetID)

	event, err := withdraw(f, 1_000_000, "coffee-shop")
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000), event.Amount)
	require.Equal(t, uint64(50_000), event.Fee)
	require.Equal(t, f.clock.now, event.Ts)

	require.Len(t, f.ledger.transfers, 2)
	toWallet := f.ledger.transfers[0]
	require.Equal(t, treasury.SubAccount, toWallet.FromAccount)
	require.Equal(t, merchantWallet, toWallet.ToAccount)
	require.Equal(t, treasury.ID, toWallet.Authority)
	require.Equal(t, uint64(950_000), toWallet.Amount)

	toPlatform := f.ledger.transfers[1]
	require.Equal(t, treasury.SubAccount, toPlatform.FromAccount)
	require.Equal(t, testFeeAccount, toPlatform.ToAccount)
	require.Equal(t, treasury.ID, toPlatform.Authority)
	require.Equal(t, uint64(50_000), toPlatform.Amount)

	withdrawals, err := f.withdrawalUC.GetWithdrawalsByMerchant(context.Background(), "coffee-shop", 0)
	require.NoError(t, err)
	require.Len(t, withdrawals, 1)
	require.Equal(t, event.EventID, withdrawals[0].ID)
	require.Equal(t, uint64(50_000), withdrawals[0].Fee)

	require.Len(t, f.publisher.published, 1)
	published := f.publisher.published[0]
	require.Equal(t, "withdraw-events", published.Topic)
	require.Equal(t, "coffee-shop", string(published.Msg.Key))

	var payload domain.WithdrawEvent
	require.NoError(t, json.Unmarshal(published.Msg.Value, &payload))
	require.Equal(t, event.EventID, payload.EventID)
	require.Equal(t, event.Merchant, payload.Merchant)
}

func TestWithdrawZeroFee(t *testing.T) {
	f := newFixture(t)
	treasury := setupWithdrawalScene(t, f, 0)

	event, err := withdraw(f, 200_000, "coffee-shop")
	require.NoError(t, err)
	require.Equal(t, uint64(0), event.Fee)

	require.Len(t, f.ledger.transfers, 1)
	require.Equal(t, treasury.SubAccount, f.ledger.transfers[0].FromAccount)
	require.Equal(t, uint64(200_000), f.ledger.transfers[0].Amount)
}

func TestWithdrawWrongCaller(t *testing.T) {
	f := newFixture(t)
	setupWithdrawalScene(t, f, 500)

	_, err := withdraw(f, 100_000, "mallory-wallet")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	require.Empty(t, f.ledger.transfers)
	require.Empty(t, f.publisher.published)

	withdrawals, err := f.withdrawalUC.GetWithdrawalsByMerchant(context.Background(), "coffee-shop", 0)
	require.NoError(t, err)
	require.Empty(t, withdrawals)
}

func TestWithdrawUnknownMerchant(t *testing.T) {
	f := newFixture(t)
	f.initPlatform(t, 250, 500)

	_, err := withdraw(f, 100_000, "coffee-shop")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWithdrawTransferFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	setupWithdrawalScene(t, f, 500)
	f.ledger.failOn = 2
	f.ledger.err = errors.New("ledger unavailable")

	_, err := withdraw(f, 1_000_000, "coffee-shop")
	require.ErrorIs(t, err, domain.ErrTransferFailed)

	withdrawals, err := f.withdrawalUC.GetWithdrawalsByMerchant(context.Background(), "coffee-shop", 0)
	require.NoError(t, err)
	require.Empty(t, withdrawals)
	require.Empty(t, f.publisher.published)
}
