package request

type TransferRequest struct {
	FromAccount string `json:"from_account"`
	ToAccount   string `json:"to_account"`
	Authority   string `json:"authority"`
	Amount      uint64 `json:"amount"`
}
