package domain

import "context"

// TxManager runs fn inside one storage transaction. If fn returns an error
// every write made through the transactional context is rolled back.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
