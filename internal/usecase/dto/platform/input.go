package platform

type InitializeInput struct {
	Authority      string
	AssetID        string
	PurchaseFeeBps uint16
	WithdrawFeeBps uint16
	FeeAccount     string
}
