package loanoffer

import (
	"context"
	"errors"

	"loanlift-backend/internal/domain/apperr"
	domain "loanlift-backend/internal/domain/loanoffer"
	"loanlift-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type OfferInput struct {
	Title      string  `json:"title"`
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Interest   float64 `json:"interest"`
	ShowOnHome bool    `json:"show_on_home"`
}

func (u *Usecase) Create(ctx context.Context, in OfferInput) (*domain.Offer, error) {
	if in.Title == "" {
		return nil, apperr.Validationf("title is required")
	}
	if in.Amount <= 0 {
		return nil, apperr.Validationf("amount must be a positive number")
	}

	o := &domain.Offer{
		OfferID:    id.NewID32(),
		Title:      in.Title,
		Category:   in.Category,
		Amount:     in.Amount,
		Interest:   in.Interest,
		ShowOnHome: in.ShowOnHome,
	}
	if err := u.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (u *Usecase) Get(ctx context.Context, offerID string) (*domain.Offer, error) {
	o, err := u.repo.GetByOfferID(ctx, offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("loan offer %s", offerID)
		}
		return nil, err
	}
	return o, nil
}

func (u *Usecase) List(ctx context.Context) ([]domain.Offer, error) { return u.repo.List(ctx) }

func (u *Usecase) ListHome(ctx context.Context) ([]domain.Offer, error) {
	return u.repo.ListHome(ctx)
}

func (u *Usecase) Search(ctx context.Context, q string) ([]domain.Offer, error) {
	if q == "" {
		return u.repo.List(ctx)
	}
	return u.repo.Search(ctx, q)
}

func (u *Usecase) Update(ctx context.Context, offerID string, in OfferInput) (*domain.Offer, error) {
	if in.Title == "" {
		return nil, apperr.Validationf("title is required")
	}
	if in.Amount <= 0 {
		return nil, apperr.Validationf("amount must be a positive number")
	}
	o, err := u.repo.GetByOfferID(ctx, offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("loan offer %s", offerID)
		}
		return nil, err
	}
	o.Title = in.Title
	o.Category = in.Category
	o.Amount = in.Amount
	o.Interest = in.Interest
	o.ShowOnHome = in.ShowOnHome
	if err := u.repo.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (u *Usecase) Delete(ctx context.Context, offerID string) error {
	if err := u.repo.Delete(ctx, offerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("loan offer %s", offerID)
		}
		return err
	}
	return nil
}
