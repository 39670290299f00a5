package domain

import (
	"context"
	"time"
)

type Merchant struct {
	ID                string
	MerchantAuthority string
	TreasuryID        string
	CreatedAt         time.Time
}

// Treasury is the merchant's platform-held holding record for the reference
// asset. SubAccount must always equal the deterministic derivation from
// (treasury id, asset id); it is cross-checked at every use site.
type Treasury struct {
	ID         string
	MerchantID string
	SubAccount string
	CreatedAt  time.Time
}

type MerchantRepository interface {
	CreateMerchant(ctx context.Context, merchant *Merchant) error
	CreateTreasury(ctx context.Context, treasury *Treasury) error
	GetMerchantByAuthority(ctx context.Context, authority string) (*Merchant, error)
	GetMerchantByID(ctx context.Context, id string) (*Merchant, error)
	GetTreasuryByMerchantID(ctx context.Context, merchantID string) (*Treasury, error)
}
