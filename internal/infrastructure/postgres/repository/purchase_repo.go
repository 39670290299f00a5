package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/swiftment/payment-service/internal/domain"
	"github.com/swiftment/payment-service/internal/infrastructure/postgres/models"
)

type DefaultPurchaseRepository struct {
	db *gorm.DB
}

func NewDefaultPurchaseRepository(db *gorm.DB) *DefaultPurchaseRepository {
	return &DefaultPurchaseRepository{db: db}
}

func (r *DefaultPurchaseRepository) CreatePurchase(ctx context.Context, purchase *domain.Purchase) error {
	model := &models.PurchaseModel{
		ID:         purchase.ID,
		UserID:     purchase.UserID,
		MerchantID: purchase.MerchantID,
		Amount:     purchase.Amount,
		Fee:        purchase.Fee,
		Timestamp:  purchase.Timestamp,
	}

	return dbFromContext(ctx, r.db).Create(model).Error
}

func (r *DefaultPurchaseRepository) GetPurchasesByUserID(ctx context.Context, userID string, limit int) ([]*domain.Purchase, error) {
	var purchaseModels []*models.PurchaseModel
	err := dbFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&purchaseModels).Error
	if err != nil {
		return nil, err
	}

	return purchasesToDomain(purchaseModels), nil
}

func (r *DefaultPurchaseRepository) GetPurchasesByMerchantID(ctx context.Context, merchantID string, limit int) ([]*domain.Purchase, error) {
	var purchaseModels []*models.PurchaseModel
	err := dbFromContext(ctx, r.db).
		Where("merchant_id = ?", merchantID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&purchaseModels).Error
	if err != nil {
		return nil, err
	}

	return purchasesToDomain(purchaseModels), nil
}

func purchasesToDomain(purchaseModels []*models.PurchaseModel) []*domain.Purchase {
	purchases := make([]*domain.Purchase, len(purchaseModels))
	for i, model := range purchaseModels {
		purchases[i] = &domain.Purchase{
			ID:         model.ID,
			UserID:     model.UserID,
			MerchantID: model.MerchantID,
			Amount:     model.Amount,
			Fee:        model.Fee,
			Timestamp:  model.Timestamp,
		}
	}
	return purchases
}
