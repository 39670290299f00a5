package models

import "gorm.io/gorm"

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&PlatformConfigModel{},
		&MerchantModel{},
		&TreasuryModel{},
		&UserModel{},
		&SubscriptionModel{},
		&PurchaseModel{},
		&WithdrawalModel{},
	)
}
