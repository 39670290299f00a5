package subscription

type OptInInput struct {
	UserOwner         string
	MerchantAuthority string
	DailyLimit        uint64
}

type SetDailyLimitInput struct {
	UserOwner         string
	MerchantAuthority string
	// Caller is the verified signer identity invoking the operation.
	Caller   string
	NewLimit uint64
}
