package models

import "time"

type MerchantModel struct {
	ID                string `gorm:"primaryKey;type:uuid"`
	MerchantAuthority string `gorm:"uniqueIndex:idx_merchant_authority;not null"`
	TreasuryID        string `gorm:"type:uuid;not null"`
	CreatedAt         time.Time
}

func (MerchantModel) TableName() string {
	return "merchants"
}
