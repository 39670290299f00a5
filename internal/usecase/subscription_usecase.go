package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swiftment/payment-service/internal/domain"
	subscriptiondto "github.com/swiftment/payment-service/internal/usecase/dto/subscription"
)

type SubscriptionUsecase interface {
	OptIn(ctx context.Context, input *subscriptiondto.OptInInput) (*domain.Subscription, error)
	SetDailyLimit(ctx context.Context, input *subscriptiondto.SetDailyLimitInput) error
	GetSubscriptionStatus(ctx context.Context, userOwner, merchantAuthority string) (*subscriptiondto.StatusOutput, error)
}

type DefaultSubscriptionUsecase struct {
	SubscriptionRepo domain.SubscriptionRepository
	UserRepo         domain.UserRepository
	MerchantRepo     domain.MerchantRepository
	Clock            domain.Clock
}

func NewDefaultSubscriptionUsecase(
	subscriptionRepo domain.SubscriptionRepository,
	userRepo domain.UserRepository,
	merchantRepo domain.MerchantRepository,
	clock domain.Clock,
) *DefaultSubscriptionUsecase {
	return &DefaultSubscriptionUsecase{
		SubscriptionRepo: subscriptionRepo,
		UserRepo:         userRepo,
		MerchantRepo:     merchantRepo,
		Clock:            clock,
	}
}

// OptIn creates the one-time subscription for a (user, merchant) pair.
func (uc *DefaultSubscriptionUsecase) OptIn(ctx context.Context, input *subscriptiondto.OptInInput) (*domain.Subscription, error) {
	user, merchant, err := uc.resolvePair(ctx, input.UserOwner, input.MerchantAuthority)
	if err != nil {
		return nil, err
	}

	existing, err := uc.SubscriptionRepo.GetSubscription(ctx, user.ID, merchant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing subscription: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: subscription %s/%s", domain.ErrAlreadyExists, input.UserOwner, input.MerchantAuthority)
	}

	now := time.Now()
	sub := &domain.Subscription{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		MerchantID: merchant.ID,
		DailyLimit: input.DailyLimit,
		SpentToday: 0,
		LastReset:  uc.Clock.Now(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.SubscriptionRepo.CreateSubscription(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return sub, nil
}

// SetDailyLimit updates only the cap. The spending counter and the reset
// timestamp are left untouched so the new limit applies to the running day.
func (uc *DefaultSubscriptionUsecase) SetDailyLimit(ctx context.Context, input *subscriptiondto.SetDailyLimitInput) error {
	user, merchant, err := uc.resolvePair(ctx, input.UserOwner, input.MerchantAuthority)
	if err != nil {
		return err
	}

	if input.Caller != user.Owner {
		return fmt.Errorf("%w: only the subscription owner may change the limit", domain.ErrUnauthorized)
	}

	sub, err := uc.SubscriptionRepo.GetSubscription(ctx, user.ID, merchant.ID)
	if err != nil {
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return fmt.Errorf("%w: subscription %s/%s", domain.ErrNotFound, input.UserOwner, input.MerchantAuthority)
	}

	if err := uc.SubscriptionRepo.UpdateDailyLimit(ctx, sub.ID, input.NewLimit); err != nil {
		return fmt.Errorf("failed to update daily limit: %w", err)
	}

	return nil
}

func (uc *DefaultSubscriptionUsecase) GetSubscriptionStatus(ctx context.Context, userOwner, merchantAuthority string) (*subscriptiondto.StatusOutput, error) {
	user, merchant, err := uc.resolvePair(ctx, userOwner, merchantAuthority)
	if err != nil {
		return nil, err
	}

	sub, err := uc.SubscriptionRepo.GetSubscription(ctx, user.ID, merchant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: subscription %s/%s", domain.ErrNotFound, userOwner, merchantAuthority)
	}

	// Read-side day rollover: stale counters are reported as zero without
	// persisting the reset.
	spent := sub.SpentToday
	if !sameUTCDay(uc.Clock.Now(), sub.LastReset) {
		spent = 0
	}

	status := &subscriptiondto.StatusOutput{
		Subscription: sub,
		SpentToday:   spent,
		Unlimited:    sub.DailyLimit == 0,
	}
	if sub.DailyLimit > 0 && sub.DailyLimit > spent {
		status.Remaining = sub.DailyLimit - spent
	}

	return status, nil
}

func (uc *DefaultSubscriptionUsecase) resolvePair(ctx context.Context, userOwner, merchantAuthority string) (*domain.User, *domain.Merchant, error) {
	user, err := uc.UserRepo.GetUserByOwner(ctx, userOwner)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, userOwner)
	}

	merchant, err := uc.MerchantRepo.GetMerchantByAuthority(ctx, merchantAuthority)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	if merchant == nil {
		return nil, nil, fmt.Errorf("%w: merchant %s", domain.ErrNotFound, merchantAuthority)
	}

	return user, merchant, nil
}
