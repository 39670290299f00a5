package models

import "time"

type SubscriptionModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	UserID     string `gorm:"type:uuid;uniqueIndex:idx_user_merchant;not null"`
	MerchantID string `gorm:"type:uuid;uniqueIndex:idx_user_merchant;not null"`
	DailyLimit uint64 `gorm:"not null;default:0"`
	SpentToday uint64 `gorm:"not null;default:0"`
	LastReset  int64  `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
