package merchant

type RegisterMerchantInput struct {
	MerchantAuthority string
}
