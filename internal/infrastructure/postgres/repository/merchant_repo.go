package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/swiftment/payment-service/internal/domain"
	"github.com/swiftment/payment-service/internal/infrastructure/postgres/models"
)

type DefaultMerchantRepository struct {
	db *gorm.DB
}

func NewDefaultMerchantRepository(db *gorm.DB) *DefaultMerchantRepository {
	return &DefaultMerchantRepository{db: db}
}

func (r *DefaultMerchantRepository) CreateMerchant(ctx context.Context, merchant *domain.Merchant) error {
	model := &models.MerchantModel{
		ID:                merchant.ID,
		MerchantAuthority: merchant.MerchantAuthority,
		TreasuryID:        merchant.TreasuryID,
		CreatedAt:         merchant.CreatedAt,
	}

	return dbFromContext(ctx, r.db).Create(model).Error
}

func (r *DefaultMerchantRepository) CreateTreasury(ctx context.Context, treasury *domain.Treasury) error {
	model := &models.TreasuryModel{
		ID:         treasury.ID,
		MerchantID: treasury.MerchantID,
		SubAccount: treasury.SubAccount,
		CreatedAt:  treasury.CreatedAt,
	}

	return dbFromContext(ctx, r.db).Create(model).Error
}

func (r *DefaultMerchantRepository) GetMerchantByAuthority(ctx context.Context, authority string) (*domain.Merchant, error) {
	var model models.MerchantModel
	if err := dbFromContext(ctx, r.db).First(&model, "merchant_authority = ?", authority).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return merchantToDomain(&model), nil
}

func (r *DefaultMerchantRepository) GetMerchantByID(ctx context.Context, id string) (*domain.Merchant, error) {
	var model models.MerchantModel
	if err := dbFromContext(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return merchantToDomain(&model), nil
}

func (r *DefaultMerchantRepository) GetTreasuryByMerchantID(ctx context.Context, merchantID string) (*domain.Treasury, error) {
	var model models.TreasuryModel
	if err := dbFromContext(ctx, r.db).First(&model, "merchant_id = ?", merchantID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &domain.Treasury{
		ID:         model.ID,
		MerchantID: model.MerchantID,
		SubAccount: model.SubAccount,
		CreatedAt:  model.CreatedAt,
	}, nil
}

func merchantToDomain(model *models.MerchantModel) *domain.Merchant {
	return &domain.Merchant{
		ID:                model.ID,
		MerchantAuthority: model.MerchantAuthority,
		TreasuryID:        model.TreasuryID,
		CreatedAt:         model.CreatedAt,
	}
}
