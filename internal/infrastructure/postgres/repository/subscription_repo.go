package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/swiftment/payment-service/internal/domain"
	"github.com/swiftment/payment-service/internal/infrastructure/postgres/models"
)

type DefaultSubscriptionRepository struct {
	db *gorm.DB
}

func NewDefaultSubscriptionRepository(db *gorm.DB) *DefaultSubscriptionRepository {
	return &DefaultSubscriptionRepository{db: db}
}

func (r *DefaultSubscriptionRepository) CreateSubscription(ctx context.Context, sub *domain.Subscription) error {
	model := &models.SubscriptionModel{
		ID:         sub.ID,
		UserID:     sub.UserID,
		MerchantID: sub.MerchantID,
		DailyLimit: sub.DailyLimit,
		SpentToday: sub.SpentToday,
		LastReset:  sub.LastReset,
		CreatedAt:  sub.CreatedAt,
		UpdatedAt:  sub.UpdatedAt,
	}

	return dbFromContext(ctx, r.db).Create(model).Error
}

func (r *DefaultSubscriptionRepository) GetSubscription(ctx context.Context, userID, merchantID string) (*domain.Subscription, error) {
	return r.getSubscription(dbFromContext(ctx, r.db), userID, merchantID)
}

func (r *DefaultSubscriptionRepository) GetSubscriptionForUpdate(ctx context.Context, userID, merchantID string) (*domain.Subscription, error) {
	db := dbFromContext(ctx, r.db)
	// SELECT ... FOR UPDATE is a no-op on sqlite, which serializes writers
	// anyway.
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return r.getSubscription(db, userID, merchantID)
}

func (r *DefaultSubscriptionRepository) getSubscription(db *gorm.DB, userID, merchantID string) (*domain.Subscription, error) {
	var model models.SubscriptionModel
	if err := db.First(&model, "user_id = ? AND merchant_id = ?", userID, merchantID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return subscriptionToDomain(&model), nil
}

func (r *DefaultSubscriptionRepository) UpdateDailyLimit(ctx context.Context, subscriptionID string, newLimit uint64) error {
	return dbFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("id = ?", subscriptionID).
		Update("daily_limit", newLimit).Error
}

func (r *DefaultSubscriptionRepository) UpdateSpending(ctx context.Context, sub *domain.Subscription) error {
	return dbFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("id = ?", sub.ID).
		Updates(map[string]interface{}{
			"spent_today": sub.SpentToday,
			"last_reset":  sub.LastReset,
		}).Error
}

func subscriptionToDomain(model *models.SubscriptionModel) *domain.Subscription {
	return &domain.Subscription{
		ID:         model.ID,
		UserID:     model.UserID,
		MerchantID: model.MerchantID,
		DailyLimit: model.DailyLimit,
		SpentToday: model.SpentToday,
		LastReset:  model.LastReset,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
