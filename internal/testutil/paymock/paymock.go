package paymock

import (
	"context"
	"time"

	domain "loanlift-backend/internal/domain/payment"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateIfAbsentFn     func(ctx context.Context, r *domain.Record) error
	GetByTransactionIDFn func(ctx context.Context, transactionID string) (*domain.Record, error)
	ListByEmailFn        func(ctx context.Context, email string) ([]domain.Record, error)
}

func (m *Repo) CreateIfAbsent(ctx context.Context, r *domain.Record) error {
	if m.CreateIfAbsentFn != nil {
		return m.CreateIfAbsentFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Record, error) {
	if m.GetByTransactionIDFn != nil {
		return m.GetByTransactionIDFn(ctx, transactionID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByEmail(ctx context.Context, email string) ([]domain.Record, error) {
	if m.ListByEmailFn != nil {
		return m.ListByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

// Processor is a function-backed mock that satisfies domain.Processor.
type Processor struct {
	CreateSessionFn func(ctx context.Context, in domain.CreateSessionInput) (*domain.CheckoutSession, error)
	GetSessionFn    func(ctx context.Context, sessionID string) (*domain.Session, error)
}

func (m *Processor) CreateSession(ctx context.Context, in domain.CreateSessionInput) (*domain.CheckoutSession, error) {
	if m.CreateSessionFn != nil {
		return m.CreateSessionFn(ctx, in)
	}
	return nil, context.Canceled
}

func (m *Processor) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	if m.GetSessionFn != nil {
		return m.GetSessionFn(ctx, sessionID)
	}
	return nil, context.Canceled
}

// Locker is a function-backed mock for the settlement lock. The zero value
// always grants the lock.
type Locker struct {
	AcquireFn func(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ReleaseFn func(ctx context.Context, key string) error
}

func (m *Locker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if m.AcquireFn != nil {
		return m.AcquireFn(ctx, key, ttl)
	}
	return true, nil
}

func (m *Locker) Release(ctx context.Context, key string) error {
	if m.ReleaseFn != nil {
		return m.ReleaseFn(ctx, key)
	}
	return nil
}
