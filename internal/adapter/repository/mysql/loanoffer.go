package mysql

import (
	"context"

	offerDomain "loanlift-backend/internal/domain/loanoffer"

	"gorm.io/gorm"
)

type LoanOfferRepository struct{ db *gorm.DB }

func NewLoanOfferRepository(db *gorm.DB) *LoanOfferRepository { return &LoanOfferRepository{db: db} }

func (r *LoanOfferRepository) Create(ctx context.Context, o *offerDomain.Offer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *LoanOfferRepository) Save(ctx context.Context, o *offerDomain.Offer) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *LoanOfferRepository) GetByOfferID(ctx context.Context, offerID string) (*offerDomain.Offer, error) {
	var out offerDomain.Offer
	res := r.db.WithContext(ctx).Where("offer_id = ?", offerID).First(&out)
	return &out, res.Error
}

func (r *LoanOfferRepository) List(ctx context.Context) ([]offerDomain.Offer, error) {
	var out []offerDomain.Offer
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *LoanOfferRepository) ListHome(ctx context.Context) ([]offerDomain.Offer, error) {
	var out []offerDomain.Offer
	res := r.db.WithContext(ctx).
		Where("show_on_home = ?", true).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanOfferRepository) Search(ctx context.Context, q string) ([]offerDomain.Offer, error) {
	var out []offerDomain.Offer
	like := "%" + q + "%"
	res := r.db.WithContext(ctx).
		Where("title LIKE ? OR category LIKE ?", like, like).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanOfferRepository) Delete(ctx context.Context, offerID string) error {
	res := r.db.WithContext(ctx).Where("offer_id = ?", offerID).Delete(&offerDomain.Offer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
