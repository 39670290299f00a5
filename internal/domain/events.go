package domain

type PurchaseEvent struct {
	EventID  string `json:"event_id"`
	User     string `json:"user"`
	Merchant string `json:"merchant"`
	Amount   uint64 `json:"amount"`
	Fee      uint64 `json:"fee"`
	Ts       int64  `json:"ts"`
}

type WithdrawEvent struct {
	EventID  string `json:"event_id"`
	Merchant string `json:"merchant"`
	Amount   uint64 `json:"amount"`
	Fee      uint64 `json:"fee"`
	Ts       int64  `json:"ts"`
}
