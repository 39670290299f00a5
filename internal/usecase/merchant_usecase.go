package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swiftment/payment-service/internal/domain"
	merchantdto "github.com/swiftment/payment-service/internal/usecase/dto/merchant"
)

type MerchantUsecase interface {
	RegisterMerchant(ctx context.Context, input *merchantdto.RegisterMerchantInput) (*merchantdto.RegisterMerchantOutput, error)
	GetMerchantByAuthority(ctx context.Context, authority string) (*merchantdto.RegisterMerchantOutput, error)
}

type DefaultMerchantUsecase struct {
	MerchantRepo domain.MerchantRepository
	ConfigRepo   domain.PlatformConfigRepository
	Deriver      domain.AddressDeriver
	TxManager    domain.TxManager
}

func NewDefaultMerchantUsecase(
	merchantRepo domain.MerchantRepository,
	configRepo domain.PlatformConfigRepository,
	deriver domain.AddressDeriver,
	txManager domain.TxManager,
) *DefaultMerchantUsecase {
	return &DefaultMerchantUsecase{
		MerchantRepo: merchantRepo,
		ConfigRepo:   configRepo,
		Deriver:      deriver,
		TxManager:    txManager,
	}
}

// RegisterMerchant creates the merchant together with its treasury in one
// transaction. The treasury's holding sub-account is the deterministic
// derivation from (treasury id, reference asset), never a caller-supplied
// address.
func (uc *DefaultMerchantUsecase) RegisterMerchant(ctx context.Context, input *merchantdto.RegisterMerchantInput) (*merchantdto.RegisterMerchantOutput, error) {
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

	existing, err := uc.MerchantRepo.GetMerchantByAuthority(ctx, input.MerchantAuthority)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing merchant: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: merchant %s", domain.ErrAlreadyExists, input.MerchantAuthority)
	}

	now := time.Now()
	treasuryID := uuid.New().String()
	merchant := &domain.Merchant{
		ID:                uuid.New().String(),
		MerchantAuthority: input.MerchantAuthority,
		TreasuryID:        treasuryID,
		CreatedAt:         now,
	}
	treasury := &domain.Treasury{
		ID:         treasuryID,
		MerchantID: merchant.ID,
		SubAccount: uc.Deriver.Derive(treasuryID, cfg.AssetID),
		CreatedAt:  now,
	}

	err = uc.TxManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.MerchantRepo.CreateMerchant(txCtx, merchant); err != nil {
			return fmt.Errorf("failed to create merchant: %w", err)
		}
		if err := uc.MerchantRepo.CreateTreasury(txCtx, treasury); err != nil {
			return fmt.Errorf("failed to create treasury: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &merchantdto.RegisterMerchantOutput{
		Merchant: merchant,
		Treasury: treasury,
	}, nil
}

func (uc *DefaultMerchantUsecase) GetMerchantByAuthority(ctx context.Context, authority string) (*merchantdto.RegisterMerchantOutput, error) {
	merchant, err := uc.MerchantRepo.GetMerchantByAuthority(ctx, authority)
	if err != nil {
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	if merchant == nil {
		return nil, fmt.Errorf("%w: merchant %s", domain.ErrNotFound, authority)
	}

	treasury, err := uc.MerchantRepo.GetTreasuryByMerchantID(ctx, merchant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get treasury: %w", err)
	}
	if treasury == nil {
		return nil, fmt.Errorf("%w: treasury for merchant %s", domain.ErrNotFound, authority)
	}

	return &merchantdto.RegisterMerchantOutput{
		Merchant: merchant,
		Treasury: treasury,
	}, nil
}
