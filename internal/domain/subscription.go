package domain

import (
	"context"
	"time"
)

// Subscription holds the daily spending cap and running daily total for one
// (user, merchant) pair. DailyLimit == 0 means unlimited.
type Subscription struct {
	ID         string
	UserID     string
	MerchantID string
	DailyLimit uint64
	SpentToday uint64
	LastReset  int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SubscriptionRepository interface {
	CreateSubscription(ctx context.Context, sub *Subscription) error
	GetSubscription(ctx context.Context, userID, merchantID string) (*Subscription, error)
	// GetSubscriptionForUpdate locks the row for the duration of the
	// surrounding transaction where the database supports it.
	GetSubscriptionForUpdate(ctx context.Context, userID, merchantID string) (*Subscription, error)
	// UpdateDailyLimit mutates only the daily limit, never the spending
	// counter or the reset timestamp.
	UpdateDailyLimit(ctx context.Context, subscriptionID string, newLimit uint64) error
	// UpdateSpending persists spent_today and last_reset.
	UpdateSpending(ctx context.Context, sub *Subscription) error
}
