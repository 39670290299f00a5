package domain

import (
	"context"
	"time"
)

// PlatformConfig is the singleton platform configuration. It is written once
// at initialization and never updated afterwards.
type PlatformConfig struct {
	Authority      string
	AssetID        string
	PurchaseFeeBps uint16
	WithdrawFeeBps uint16
	FeeAccount     string
	CreatedAt      time.Time
}

type PlatformConfigRepository interface {
	CreateConfig(ctx context.Context, cfg *PlatformConfig) error
	GetConfig(ctx context.Context) (*PlatformConfig, error)
}
