package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jaevor/go-nanoid"

	"github.com/swiftment/payment-service/internal/domain"
	"github.com/swiftment/payment-service/internal/infrastructure/metrics"
	paymentdto "github.com/swiftment/payment-service/internal/usecase/dto/payment"
)

const purchaseEventsTopic = "purchase-events"

// maxHistoryLimit caps history queries the same way the public API does.
const maxHistoryLimit = 200

type PaymentUsecase interface {
	Pay(ctx context.Context, input *paymentdto.PayInput) (*domain.PurchaseEvent, error)
	GetPurchasesByUser(ctx context.Context, owner string, limit int) ([]*domain.Purchase, error)
	GetPurchasesByMerchant(ctx context.Context, authority string, limit int) ([]*domain.Purchase, error)
}

type DefaultPaymentUsecase struct {
	ConfigRepo       domain.PlatformConfigRepository
	UserRepo         domain.UserRepository
	MerchantRepo     domain.MerchantRepository
	SubscriptionRepo domain.SubscriptionRepository
	PurchaseRepo     domain.PurchaseRepository
	Ledger           domain.TokenLedger
	Deriver          domain.AddressDeriver
	Clock            domain.Clock
	TxManager        domain.TxManager
	Publisher        domain.PublisherPort
	Metrics          *metrics.PaymentMetrics
}

func NewDefaultPaymentUsecase(
	configRepo domain.PlatformConfigRepository,
	userRepo domain.UserRepository,
	merchantRepo domain.MerchantRepository,
	subscriptionRepo domain.SubscriptionRepository,
	purchaseRepo domain.PurchaseRepository,
	ledger domain.TokenLedger,
	deriver domain.AddressDeriver,
	clock domain.Clock,
	txManager domain.TxManager,
	publisher domain.PublisherPort,
	paymentMetrics *metrics.PaymentMetrics,
) *DefaultPaymentUsecase {
	return &DefaultPaymentUsecase{
		ConfigRepo:       configRepo,
		UserRepo:         userRepo,
		MerchantRepo:     merchantRepo,
		SubscriptionRepo: subscriptionRepo,
		PurchaseRepo:     purchaseRepo,
		Ledger:           ledger,
		Deriver:          deriver,
		Clock:            clock,
		TxManager:        txManager,
		Publisher:        publisher,
		Metrics:          paymentMetrics,
	}
}

// Pay executes a purchase as one atomic unit: lazy day rollover, limit
// check, fee split, the ledger transfers and the counter update either all
// take effect or none do.
func (uc *DefaultPaymentUsecase) Pay(ctx context.Context, input *paymentdto.PayInput) (*domain.PurchaseEvent, error) {
	start := time.Now()

	if input.UserOwner == "" {
		return nil, fmt.Errorf("user_owner is required")
	}
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

	user, err := uc.UserRepo.GetUserByOwner(ctx, input.UserOwner)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, input.UserOwner)
	}

	merchant, err := uc.MerchantRepo.GetMerchantByAuthority(ctx, input.MerchantAuthority)
	if err != nil {
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	if merchant == nil {
		return nil, fmt.Errorf("%w: merchant %s", domain.ErrNotFound, input.MerchantAuthority)
	}

	treasury, err := uc.MerchantRepo.GetTreasuryByMerchantID(ctx, merchant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get treasury: %w", err)
	}
	if treasury == nil {
		return nil, fmt.Errorf("%w: treasury for merchant %s", domain.ErrNotFound, input.MerchantAuthority)
	}

	// The stored treasury sub-account is never trusted as-is; it must match
	// the derivation from (treasury id, reference asset).
	if treasury.SubAccount != uc.Deriver.Derive(treasury.ID, cfg.AssetID) {
		uc.Metrics.OperationErrorsTotal.WithLabelValues("pay", "sub_account_mismatch").Inc()
		return nil, fmt.Errorf("%w: treasury %s", domain.ErrSubAccountMismatch, treasury.ID)
	}

	userAccount := uc.Deriver.Derive(user.Owner, cfg.AssetID)
	now := uc.Clock.Now()
	fee, toMerchant := SplitFee(input.Amount, cfg.PurchaseFeeBps)

	var event *domain.PurchaseEvent
	err = uc.TxManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		sub, err := uc.SubscriptionRepo.GetSubscriptionForUpdate(txCtx, user.ID, merchant.ID)
		if err != nil {
			return fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil {
			return fmt.Errorf("%w: subscription %s/%s", domain.ErrNotFound, input.UserOwner, input.MerchantAuthority)
		}

		if !sameUTCDay(now, sub.LastReset) {
			sub.SpentToday = 0
			sub.LastReset = now
		}

		// daily_limit == 0 means unlimited
		if sub.DailyLimit > 0 && saturatingAdd(sub.SpentToday, input.Amount) > sub.DailyLimit {
			return fmt.Errorf("%w: spent=%d amount=%d limit=%d", domain.ErrDailyLimitExceeded, sub.SpentToday, input.Amount, sub.DailyLimit)
		}

		if err := uc.Ledger.Transfer(txCtx, &domain.TransferRequest{
			FromAccount: userAccount,
			ToAccount:   treasury.SubAccount,
			Authority:   user.Owner,
			Amount:      toMerchant,
		}); err != nil {
			return fmt.Errorf("%w: to merchant treasury: %v", domain.ErrTransferFailed, err)
		}

		if fee > 0 {
			if err := uc.Ledger.Transfer(txCtx, &domain.TransferRequest{
				FromAccount: userAccount,
				ToAccount:   cfg.FeeAccount,
				Authority:   user.Owner,
				Amount:      fee,
			}); err != nil {
				return fmt.Errorf("%w: to platform fee account: %v", domain.ErrTransferFailed, err)
			}
		}

		sub.SpentToday = saturatingAdd(sub.SpentToday, input.Amount)
		if err := uc.SubscriptionRepo.UpdateSpending(txCtx, sub); err != nil {
			return fmt.Errorf("failed to update spending: %w", err)
		}

		eventID, err := newEventID()
		if err != nil {
			return err
		}
		if err := uc.PurchaseRepo.CreatePurchase(txCtx, &domain.Purchase{
			ID:         eventID,
			UserID:     user.ID,
			MerchantID: merchant.ID,
			Amount:     input.Amount,
			Fee:        fee,
			Timestamp:  now,
		}); err != nil {
			return fmt.Errorf("failed to record purchase: %w", err)
		}

		event = &domain.PurchaseEvent{
			EventID:  eventID,
			User:     user.ID,
			Merchant: merchant.ID,
			Amount:   input.Amount,
			Fee:      fee,
			Ts:       now,
		}
		return nil
	})
	if err != nil {
		uc.Metrics.OperationErrorsTotal.WithLabelValues("pay", errorReason(err)).Inc()
		return nil, err
	}

	uc.publishEvent(purchaseEventsTopic, user.Owner, event)

	uc.Metrics.PurchasesTotal.WithLabelValues(merchant.ID).Inc()
	uc.Metrics.PurchaseAmountTotal.WithLabelValues(merchant.ID).Add(float64(input.Amount))
	uc.Metrics.PlatformFeeTotal.WithLabelValues("pay").Add(float64(fee))
	uc.Metrics.OperationDuration.WithLabelValues("pay").Observe(time.Since(start).Seconds())

	return event, nil
}

func (uc *DefaultPaymentUsecase) GetPurchasesByUser(ctx context.Context, owner string, limit int) ([]*domain.Purchase, error) {
	user, err := uc.UserRepo.GetUserByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, owner)
	}

	return uc.PurchaseRepo.GetPurchasesByUserID(ctx, user.ID, clampHistoryLimit(limit))
}

func (uc *DefaultPaymentUsecase) GetPurchasesByMerchant(ctx context.Context, authority string, limit int) ([]*domain.Purchase, error) {
	merchant, err := uc.MerchantRepo.GetMerchantByAuthority(ctx, authority)
	if err != nil {
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	if merchant == nil {
		return nil, fmt.Errorf("%w: merchant %s", domain.ErrNotFound, authority)
	}

	return uc.PurchaseRepo.GetPurchasesByMerchantID(ctx, merchant.ID, clampHistoryLimit(limit))
}

func (uc *DefaultPaymentUsecase) publishEvent(topic, key string, event any) {
	publishJSON(uc.Publisher, topic, key, event)
}

func newEventID() (string, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return "", fmt.Errorf("failed to init id generator: %w", err)
	}
	return idGenerator(), nil
}

func clampHistoryLimit(limit int) int {
	if limit <= 0 || limit > maxHistoryLimit {
		return maxHistoryLimit
	}
	return limit
}

func errorReason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, domain.ErrDailyLimitExceeded):
		return "daily_limit_exceeded"
	case errors.Is(err, domain.ErrTransferFailed):
		return "transfer_failed"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrSubAccountMismatch):
		return "sub_account_mismatch"
	default:
		return "internal"
	}
}
