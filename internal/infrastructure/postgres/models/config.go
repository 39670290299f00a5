package models

import "time"

// PlatformConfigModel is a singleton row; ID is always 1.
type PlatformConfigModel struct {
	ID             uint   `gorm:"primaryKey"`
	Authority      string `gorm:"not null"`
	AssetID        string `gorm:"not null"`
	PurchaseFeeBps uint16 `gorm:"not null;default:0"`
	WithdrawFeeBps uint16 `gorm:"not null;default:0"`
	FeeAccount     string `gorm:"not null"`
	CreatedAt      time.Time
}

func (PlatformConfigModel) TableName() string {
	return "platform_config"
}
