package models

import "time"

type UserModel struct {
	ID                string `gorm:"primaryKey;type:uuid"`
	Owner             string `gorm:"uniqueIndex:idx_user_owner;not null"`
	DefaultDailyLimit uint64 `gorm:"not null;default:0"`
	CreatedAt         time.Time
}

func (UserModel) TableName() string {
	return "users"
}
