package offermock

import (
	"context"

	domain "loanlift-backend/internal/domain/loanoffer"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, o *domain.Offer) error
	GetByOfferIDFn func(ctx context.Context, offerID string) (*domain.Offer, error)
	ListFn         func(ctx context.Context) ([]domain.Offer, error)
	ListHomeFn     func(ctx context.Context) ([]domain.Offer, error)
	SearchFn       func(ctx context.Context, q string) ([]domain.Offer, error)
	SaveFn         func(ctx context.Context, o *domain.Offer) error
	DeleteFn       func(ctx context.Context, offerID string) error
}

func (m *Repo) Create(ctx context.Context, o *domain.Offer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}

func (m *Repo) GetByOfferID(ctx context.Context, offerID string) (*domain.Offer, error) {
	if m.GetByOfferIDFn != nil {
		return m.GetByOfferIDFn(ctx, offerID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Offer, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) ListHome(ctx context.Context) ([]domain.Offer, error) {
	if m.ListHomeFn != nil {
		return m.ListHomeFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Search(ctx context.Context, q string) ([]domain.Offer, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, q)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, o *domain.Offer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, o)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, offerID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, offerID)
	}
	return nil
}
