package tx

import "context"

// Manager abstracts transaction management for the service layer.
// Nested calls join the transaction already stored in the context.
type Manager interface {
	// RunInTransaction executes fn within a transaction. The transaction is
	// committed when fn returns nil and rolled back otherwise.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// RunInTransactionWithSavepoint executes fn within a savepoint when a
	// transaction is already active, otherwise behaves like RunInTransaction.
	RunInTransactionWithSavepoint(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReadOnlyManager runs read-only transactions, typically used for reports
// that need a consistent snapshot across several queries.
type ReadOnlyManager interface {
	RunInReadOnlyTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
