package domain

import "context"

type Purchase struct {
	ID         string
	UserID     string
	MerchantID string
	Amount     uint64
	Fee        uint64
	Timestamp  int64
}

type Withdrawal struct {
	ID         string
	MerchantID string
	Amount     uint64
	Fee        uint64
	Timestamp  int64
}

type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchase *Purchase) error
	GetPurchasesByUserID(ctx context.Context, userID string, limit int) ([]*Purchase, error)
	GetPurchasesByMerchantID(ctx context.Context, merchantID string, limit int) ([]*Purchase, error)
}

type WithdrawalRepository interface {
	CreateWithdrawal(ctx context.Context, withdrawal *Withdrawal) error
	GetWithdrawalsByMerchantID(ctx context.Context, merchantID string, limit int) ([]*Withdrawal, error)
}
