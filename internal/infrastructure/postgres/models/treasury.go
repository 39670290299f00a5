package models

import "time"

type TreasuryModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	MerchantID string `gorm:"type:uuid;uniqueIndex:idx_treasury_merchant;not null"`
	SubAccount string `gorm:"not null"`
	CreatedAt  time.Time
}

func (TreasuryModel) TableName() string {
	return "treasuries"
}
