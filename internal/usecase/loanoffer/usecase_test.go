package loanoffer

import (
	"context"
	"errors"
	"testing"

	"loanlift-backend/internal/domain/apperr"
	domain "loanlift-backend/internal/domain/loanoffer"
	"loanlift-backend/internal/testutil/offermock"

	"gorm.io/gorm"
)

func TestCreate_AssignsOfferID(t *testing.T) {
	var created *domain.Offer
	uc := NewUsecase(&offermock.Repo{
		CreateFn: func(ctx context.Context, o *domain.Offer) error {
			created = o
			return nil
		},
	})

	o, err := uc.Create(context.Background(), OfferInput{
		Title:    "Working Capital",
		Category: "business",
		Amount:   25000,
		Interest: 0.12,
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if len(o.OfferID) != 32 {
		t.Fatalf("OfferID length: %d", len(o.OfferID))
	}
	if created != o {
		t.Fatalf("not persisted")
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	uc := NewUsecase(&offermock.Repo{})

	if _, err := uc.Create(context.Background(), OfferInput{Amount: 100}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("missing title: want validation error, got %v", err)
	}
	if _, err := uc.Create(context.Background(), OfferInput{Title: "X", Amount: 0}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("zero amount: want validation error, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	uc := NewUsecase(&offermock.Repo{
		GetByOfferIDFn: func(ctx context.Context, offerID string) (*domain.Offer, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})
	if _, err := uc.Get(context.Background(), "missing"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestSearch_EmptyQueryListsAll(t *testing.T) {
	all := []domain.Offer{{Title: "A"}, {Title: "B"}}
	uc := NewUsecase(&offermock.Repo{
		ListFn: func(ctx context.Context) ([]domain.Offer, error) { return all, nil },
		SearchFn: func(ctx context.Context, q string) ([]domain.Offer, error) {
			if q != "capital" {
				t.Fatalf("q = %q", q)
			}
			return all[:1], nil
		},
	})

	got, err := uc.Search(context.Background(), "")
	if err != nil || len(got) != 2 {
		t.Fatalf("empty query: %v %v", got, err)
	}
	got, err = uc.Search(context.Background(), "capital")
	if err != nil || len(got) != 1 {
		t.Fatalf("query: %v %v", got, err)
	}
}

func TestUpdate(t *testing.T) {
	stored := &domain.Offer{OfferID: "o1", Title: "Old", Amount: 100}
	var saved *domain.Offer
	uc := NewUsecase(&offermock.Repo{
		GetByOfferIDFn: func(ctx context.Context, offerID string) (*domain.Offer, error) {
			if offerID != "o1" {
				return nil, gorm.ErrRecordNotFound
			}
			return stored, nil
		},
		SaveFn: func(ctx context.Context, o *domain.Offer) error {
			saved = o
			return nil
		},
	})

	o, err := uc.Update(context.Background(), "o1", OfferInput{Title: "New", Amount: 200, Interest: 0.1, ShowOnHome: true})
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if o.Title != "New" || o.Amount != 200 || !o.ShowOnHome || saved != stored {
		t.Fatalf("unexpected offer: %+v", o)
	}

	if _, err := uc.Update(context.Background(), "missing", OfferInput{Title: "X", Amount: 1}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	uc := NewUsecase(&offermock.Repo{
		DeleteFn: func(ctx context.Context, offerID string) error {
			return gorm.ErrRecordNotFound
		},
	})
	if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}
