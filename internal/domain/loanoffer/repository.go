package loanoffer

import "context"

type Repository interface {
	Create(ctx context.Context, o *Offer) error
	GetByOfferID(ctx context.Context, offerID string) (*Offer, error)
	List(ctx context.Context) ([]Offer, error)
	// ListHome returns only offers flagged for the home page.
	ListHome(ctx context.Context) ([]Offer, error)
	// Search matches the query as a substring of title or category.
	Search(ctx context.Context, q string) ([]Offer, error)
	Save(ctx context.Context, o *Offer) error
	Delete(ctx context.Context, offerID string) error
}
