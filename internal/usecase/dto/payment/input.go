package payment

type PayInput struct {
	UserOwner         string
	MerchantAuthority string
	Amount            uint64
}

type WithdrawInput struct {
	MerchantAuthority string
	Amount            uint64
	// Caller is the verified signer identity invoking the withdrawal; it
	// must match the merchant's authority.
	Caller string
}
