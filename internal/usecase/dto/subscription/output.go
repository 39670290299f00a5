package subscription

import "github.com/swiftment/payment-service/internal/domain"

// StatusOutput is the read-side view of a subscription. SpentToday and
// Remaining reflect a lazy day rollover at read time without persisting it.
type StatusOutput struct {
	Subscription *domain.Subscription
	SpentToday   uint64
	Remaining    uint64
	Unlimited    bool
}
