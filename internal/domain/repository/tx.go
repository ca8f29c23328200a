package repository

import "context"

// TxManager runs a function inside a single database transaction. If fn
// returns an error the transaction is rolled back and no partial writes are
// visible to concurrent readers. Repositories participating in the
// transaction pick it up from the context.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
