package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/swiftment/payment-service/internal/domain"
	"github.com/swiftment/payment-service/internal/infrastructure/postgres/models"
)

const platformConfigID = 1

type DefaultConfigRepository struct {
	db *gorm.DB
}

func NewDefaultConfigRepository(db *gorm.DB) *DefaultConfigRepository {
	return &DefaultConfigRepository{db: db}
}

func (r *DefaultConfigRepository) CreateConfig(ctx context.Context, cfg *domain.PlatformConfig) error {
	model := &models.PlatformConfigModel{
		ID:             platformConfigID,
		Authority:      cfg.Authority,
		AssetID:        cfg.AssetID,
		PurchaseFeeBps: cfg.PurchaseFeeBps,
		WithdrawFeeBps: cfg.WithdrawFeeBps,
		FeeAccount:     cfg.FeeAccount,
		CreatedAt:      cfg.CreatedAt,
	}

	return dbFromContext(ctx, r.db).Create(model).Error
}

func (r *DefaultConfigRepository) GetConfig(ctx context.Context) (*domain.PlatformConfig, error) {
	var model models.PlatformConfigModel
	if err := dbFromContext(ctx, r.db).First(&model, "id = ?", platformConfigID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &domain.PlatformConfig{
		Authority:      model.Authority,
		AssetID:        model.AssetID,
		PurchaseFeeBps: model.PurchaseFeeBps,
		WithdrawFeeBps: model.WithdrawFeeBps,
		FeeAccount:     model.FeeAccount,
		CreatedAt:      model.CreatedAt,
	}, nil
}
