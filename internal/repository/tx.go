package repository

import "context"

// TxManager runs a function inside a store transaction. Reads performed through
// the repositories within the transaction take row locks, so concurrent
// check-then-act sequences against the same relation or user serialize instead
// of both passing their conflict checks.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
