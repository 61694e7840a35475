package mysql

import (
	"context"
	"errors"
	"testing"

	domain "loanlift-backend/internal/domain/loanoffer"
	"loanlift-backend/pkg/id"

	"gorm.io/gorm"
)

func makeOffer(title, category string, home bool) *domain.Offer {
	return &domain.Offer{
		OfferID:    id.NewID32(),
		Title:      title,
		Category:   category,
		Amount:     25000,
		Interest:   0.12,
		ShowOnHome: home,
	}
}

func TestOffer_CreateGetSave(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanOfferRepository(db)
	ctx := context.Background()

	o := makeOffer("Working Capital", "business", false)
	if err := repo.Create(ctx, o); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByOfferID(ctx, o.OfferID)
	if err != nil {
		t.Fatalf("GetByOfferID: %v", err)
	}
	if got.Title != "Working Capital" {
		t.Errorf("unexpected offer: %+v", got)
	}

	got.Interest = 0.15
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("Save: %v", err)
	}
	again, err := repo.GetByOfferID(ctx, o.OfferID)
	if err != nil || again.Interest != 0.15 {
		t.Fatalf("update not persisted: %+v %v", again, err)
	}
}

func TestOffer_SearchAndHome(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanOfferRepository(db)
	ctx := context.Background()

	for _, o := range []*domain.Offer{
		makeOffer("Working Capital", "business", true),
		makeOffer("Home Renovation", "personal", false),
		makeOffer("Equipment Finance", "business", true),
	} {
		if err := repo.Create(ctx, o); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	// substring of title
	got, err := repo.Search(ctx, "Capital")
	if err != nil || len(got) != 1 {
		t.Fatalf("title search: %v %v", got, err)
	}
	// substring of category
	got, err = repo.Search(ctx, "business")
	if err != nil || len(got) != 2 {
		t.Fatalf("category search: %v %v", got, err)
	}
	// no match
	got, err = repo.Search(ctx, "yacht")
	if err != nil || len(got) != 0 {
		t.Fatalf("no-match search: %v %v", got, err)
	}

	home, err := repo.ListHome(ctx)
	if err != nil || len(home) != 2 {
		t.Fatalf("ListHome: %v %v", home, err)
	}
	for _, o := range home {
		if !o.ShowOnHome {
			t.Errorf("non-home offer listed: %+v", o)
		}
	}
}

func TestOffer_Delete(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanOfferRepository(db)
	ctx := context.Background()

	o := makeOffer("Working Capital", "business", false)
	if err := repo.Create(ctx, o); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, o.OfferID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// soft-deleted rows are invisible to reads
	if _, err := repo.GetByOfferID(ctx, o.OfferID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("after delete: want ErrRecordNotFound, got %v", err)
	}
	// deleting again reports not found
	if err := repo.Delete(ctx, o.OfferID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("double delete: want ErrRecordNotFound, got %v", err)
	}
}
