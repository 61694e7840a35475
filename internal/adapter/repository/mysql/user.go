package mysql

import (
	"context"

	userDomain "loanlift-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, a *userDomain.Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *UserRepository) Save(ctx context.Context, a *userDomain.Account) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.Account, error) {
	var out userDomain.Account
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *UserRepository) List(ctx context.Context) ([]userDomain.Account, error) {
	var out []userDomain.Account
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}
