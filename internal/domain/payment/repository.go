package payment

import "context"

type Repository interface {
	// CreateIfAbsent inserts r, relying on the unique transaction_id index.
	// A duplicate insert returns apperr.ErrConflict so the caller can fall
	// back to the previously recorded result.
	CreateIfAbsent(ctx context.Context, r *Record) error
	GetByTransactionID(ctx context.Context, transactionID string) (*Record, error)
	// ListByEmail returns records ordered by paid_at descending.
	ListByEmail(ctx context.Context, email string) ([]Record, error)
}
