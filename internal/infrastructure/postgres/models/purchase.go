package models

import "time"

type PurchaseModel struct {
	ID         string `gorm:"primaryKey"`
	UserID     string `gorm:"type:uuid;index:idx_purchase_user;not null"`
	MerchantID string `gorm:"type:uuid;index:idx_purchase_merchant;not null"`
	Amount     uint64 `gorm:"not null"`
	Fee        uint64 `gorm:"not null"`
	Timestamp  int64  `gorm:"index:idx_purchase_ts;not null"`
	CreatedAt  time.Time
}

func (PurchaseModel) TableName() string {
	return "purchases"
}
