package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/swiftment/payment-service/internal/domain"
	platformdto "github.com/swiftment/payment-service/internal/usecase/dto/platform"
)

type PlatformUsecase interface {
	Initialize(ctx context.Context, input *platformdto.InitializeInput) (*domain.PlatformConfig, error)
	GetConfig(ctx context.Context) (*domain.PlatformConfig, error)
}

type DefaultPlatformUsecase struct {
	ConfigRepo domain.PlatformConfigRepository
}

func NewDefaultPlatformUsecase(configRepo domain.PlatformConfigRepository) *DefaultPlatformUsecase {
	return &DefaultPlatformUsecase{ConfigRepo: configRepo}
}

// Initialize creates the singleton platform configuration. There is no
// update path: the configuration is immutable once written.
func (uc *DefaultPlatformUsecase) Initialize(ctx context.Context, input *platformdto.InitializeInput) (*domain.PlatformConfig, error) {
	if input.Authority == "" {
		return nil, fmt.Errorf("authority is required")
	}
	if input.AssetID == "" {
		return nil, fmt.Errorf("asset_id is required")
	}
	if input.FeeAccount == "" {
		return nil, fmt.Errorf("fee_account is required")
	}

	if input.PurchaseFeeBps > bpsDenominator || input.WithdrawFeeBps > bpsDenominator {
		return nil, fmt.Errorf("%w: purchase=%d withdraw=%d", domain.ErrInvalidBps, input.PurchaseFeeBps, input.WithdrawFeeBps)
	}

	existing, err := uc.ConfigRepo.GetConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing config: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: platform config", domain.ErrAlreadyExists)
	}

	cfg := &domain.PlatformConfig{
		Authority:      input.Authority,
		AssetID:        input.AssetID,
		PurchaseFeeBps: input.PurchaseFeeBps,
		WithdrawFeeBps: input.WithdrawFeeBps,
		FeeAccount:     input.FeeAccount,
		CreatedAt:      time.Now(),
	}

	if err := uc.ConfigRepo.CreateConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to create config: %w", err)
	}

	return cfg, nil
}

func (uc *DefaultPlatformUsecase) GetConfig(ctx context.Context) (*domain.PlatformConfig, error) {
	cfg, err := uc.ConfigRepo.GetConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: platform config", domain.ErrNotFound)
	}
	return cfg, nil
}
