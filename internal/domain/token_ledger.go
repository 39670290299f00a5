package domain

import "context"

type TransferRequest struct {
	FromAccount string
	ToAccount   string
	// Authority is the identity the ledger checks the transfer against:
	// the user's owner identity for purchases, the treasury's own delegated
	// identity for withdrawals.
	Authority string
	Amount    uint64
}

// TokenLedger executes value transfers between holding sub-accounts,
// including authorization and balance checks. It is an external collaborator;
// its failures surface as ErrTransferFailed.
type TokenLedger interface {
	Transfer(ctx context.Context, req *TransferRequest) error
}
