// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// TransactionManager batches the writes of one user-facing command behind
// a single commit. Repositories called with the context passed to fn take
// part in the same database transaction.
type TransactionManager interface {
	// WithinTransaction runs fn inside one transaction; returning an error
	// rolls every pending write back.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
