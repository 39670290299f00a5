package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/swiftment/payment-service/internal/domain"
	"github.com/swiftment/payment-service/internal/infrastructure/metrics"
	paymentdto "github.com/swiftment/payment-service/internal/usecase/dto/payment"
)

const withdrawEventsTopic = "withdraw-events"

type WithdrawalUsecase interface {
	Withdraw(ctx context.Context, input *paymentdto.WithdrawInput) (*domain.WithdrawEvent, error)
	GetWithdrawalsByMerchant(ctx context.Context, authority string, limit int) ([]*domain.Withdrawal, error)
}

type DefaultWithdrawalUsecase struct {
	ConfigRepo     domain.PlatformConfigRepository
	MerchantRepo   domain.MerchantRepository
	WithdrawalRepo domain.WithdrawalRepository
	Ledger         domain.TokenLedger
	Deriver        domain.AddressDeriver
	Clock          domain.Clock
	TxManager      domain.TxManager
	Publisher      domain.PublisherPort
	Metrics        *metrics.PaymentMetrics
}

func NewDefaultWithdrawalUsecase(
	configRepo domain.PlatformConfigRepository,
	merchantRepo domain.MerchantRepository,
	withdrawalRepo domain.WithdrawalRepository,
	ledger domain.TokenLedger,
	deriver domain.AddressDeriver,
	clock domain.Clock,
	txManager domain.TxManager,
	publisher domain.PublisherPort,
	paymentMetrics *metrics.PaymentMetrics,
) *DefaultWithdrawalUsecase {
	return &DefaultWithdrawalUsecase{
		ConfigRepo:     configRepo,
		MerchantRepo:   merchantRepo,
		WithdrawalRepo: withdrawalRepo,
		Ledger:         ledger,
		Deriver:        deriver,
		Clock:          clock,
		TxManager:      txManager,
		Publisher:      publisher,
		Metrics:        paymentMetrics,
	}
}

// Withdraw pays out from the merchant's treasury to its personal wallet,
// skimming the withdrawal fee. The treasury is platform-controlled, so both
// transfers are authorized by the treasury's own delegated identity rather
// than the caller's.
func (uc *DefaultWithdrawalUsecase) Withdraw(ctx context.Context, input *paymentdto.WithdrawInput) (*domain.WithdrawEvent, error) {
	start := time.Now()

	if input.MerchantAuthority == "" {
		return nil, fmt.Errorf("merchant_authority is required")
	}

	cfg, err := uc.ConfigRepo.GetConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: platform config", domain.ErrNotFound)
	}

	merchant, err := uc.MerchantRepo.GetMerchantByAuthority(ctx, input.MerchantAuthority)
	if err != nil {
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	if merchant == nil {
		return nil, fmt.Errorf("%w: merchant %s", domain.ErrNotFound, input.MerchantAuthority)
	}

	if input.Caller != merchant.MerchantAuthority {
		uc.Metrics.OperationErrorsTotal.WithLabelValues("withdraw", "unauthorized").Inc()
		return nil, fmt.Errorf("%w: only the merchant authority may withdraw", domain.ErrUnauthorized)
	}

	treasury, err := uc.MerchantRepo.GetTreasuryByMerchantID(ctx, merchant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get treasury: %w", err)
	}
	if treasury == nil {
		return nil, fmt.Errorf("%w: treasury for merchant %s", domain.ErrNotFound, input.MerchantAuthority)
	}

	if treasury.SubAccount != uc.Deriver.Derive(treasury.ID, cfg.AssetID) {
		uc.Metrics.OperationErrorsTotal.WithLabelValues("withdraw", "sub_account_mismatch").Inc()
		return nil, fmt.Errorf("%w: treasury %s", domain.ErrSubAccountMismatch, treasury.ID)
	}

	merchantWallet := uc.Deriver.Derive(merchant.MerchantAuthority, cfg.AssetID)
	now := uc.Clock.Now()
	fee, toMerchant := SplitFee(input.Amount, cfg.WithdrawFeeBps)

	var event *domain.WithdrawEvent
	err = uc.TxManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.Ledger.Transfer(txCtx, &domain.TransferRequest{
			FromAccount: treasury.SubAccount,
			ToAccount:   merchantWallet,
			Authority:   treasury.ID,
			Amount:      toMerchant,
		}); err != nil {
			return fmt.Errorf("%w: to merchant wallet: %v", domain.ErrTransferFailed, err)
		}

		if fee > 0 {
			if err := uc.Ledger.Transfer(txCtx, &domain.TransferRequest{
				FromAccount: treasury.SubAccount,
				ToAccount:   cfg.FeeAccount,
				Authority:   treasury.ID,
				Amount:      fee,
			}); err != nil {
				return fmt.Errorf("%w: to platform fee account: %v", domain.ErrTransferFailed, err)
			}
		}

		eventID, err := newEventID()
		if err != nil {
			return err
		}
		if err := uc.WithdrawalRepo.CreateWithdrawal(txCtx, &domain.Withdrawal{
			ID:         eventID,
			MerchantID: merchant.ID,
			Amount:     input.Amount,
			Fee:        fee,
			Timestamp:  now,
		}); err != nil {
			return fmt.Errorf("failed to record withdrawal: %w", err)
		}

		event = &domain.WithdrawEvent{
			EventID:  eventID,
			Merchant: merchant.ID,
			Amount:   input.Amount,
			Fee:      fee,
			Ts:       now,
		}
		return nil
	})
	if err != nil {
		uc.Metrics.OperationErrorsTotal.WithLabelValues("withdraw", errorReason(err)).Inc()
		return nil, err
	}

	uc.publishEvent(withdrawEventsTopic, merchant.MerchantAuthority, event)

	uc.Metrics.WithdrawalsTotal.WithLabelValues(merchant.ID).Inc()
	uc.Metrics.WithdrawalAmountTotal.WithLabelValues(merchant.ID).Add(float64(input.Amount))
	uc.Metrics.PlatformFeeTotal.WithLabelValues("withdraw").Add(float64(fee))
	uc.Metrics.OperationDuration.WithLabelValues("withdraw").Observe(time.Since(start).Seconds())

	return event, nil
}

func (uc *DefaultWithdrawalUsecase) GetWithdrawalsByMerchant(ctx context.Context, authority string, limit int) ([]*domain.Withdrawal, error) {
	merchant, err := uc.MerchantRepo.GetMerchantByAuthority(ctx, authority)
	if err != nil {
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	if merchant == nil {
		return nil, fmt.Errorf("%w: merchant %s", domain.ErrNotFound, authority)
	}

	return uc.WithdrawalRepo.GetWithdrawalsByMerchantID(ctx, merchant.ID, clampHistoryLimit(limit))
}

func (uc *DefaultWithdrawalUsecase) publishEvent(topic, key string, event any) {
	publishJSON(uc.Publisher, topic, key, event)
}
