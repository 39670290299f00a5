package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/swiftment/payment-service/internal/domain"
	"github.com/swiftment/payment-service/internal/infrastructure/postgres/models"
)

type DefaultWithdrawalRepository struct {
	db *gorm.DB
}

func NewDefaultWithdrawalRepository(db *gorm.DB) *DefaultWithdrawalRepository {
	return &DefaultWithdrawalRepository{db: db}
}

func (r *DefaultWithdrawalRepository) CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) error {
	model := &models.WithdrawalModel{
		ID:         withdrawal.ID,
		MerchantID: withdrawal.MerchantID,
		Amount:     withdrawal.Amount,
		Fee:        withdrawal.Fee,
		Timestamp:  withdrawal.Timestamp,
	}

	return dbFromContext(ctx, r.db).Create(model).Error
}

func (r *DefaultWithdrawalRepository) GetWithdrawalsByMerchantID(ctx context.Context, merchantID string, limit int) ([]*domain.Withdrawal, error) {
	var withdrawalModels []*models.WithdrawalModel
	err := dbFromContext(ctx, r.db).
		Where("merchant_id = ?", merchantID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&withdrawalModels).Error
	if err != nil {
		return nil, err
	}

	withdrawals := make([]*domain.Withdrawal, len(withdrawalModels))
	for i, model := range withdrawalModels {
		withdrawals[i] = &domain.Withdrawal{
			ID:         model.ID,
			MerchantID: model.MerchantID,
			Amount:     model.Amount,
			Fee:        model.Fee,
			Timestamp:  model.Timestamp,
		}
	}
	return withdrawals, nil
}
