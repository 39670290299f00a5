package models

import "time"

type WithdrawalModel struct {
	ID         string `gorm:"primaryKey"`
	MerchantID string `gorm:"type:uuid;index:idx_withdrawal_merchant;not null"`
	Amount     uint64 `gorm:"not null"`
	Fee        uint64 `gorm:"not null"`
	Timestamp  int64  `gorm:"index:idx_withdrawal_ts;not null"`
	CreatedAt  time.Time
}

func (WithdrawalModel) TableName() string {
	return "withdrawals"
}
