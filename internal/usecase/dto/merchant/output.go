package merchant

import "github.com/swiftment/payment-service/internal/domain"

type RegisterMerchantOutput struct {
	Merchant *domain.Merchant
	Treasury *domain.Treasury
}
