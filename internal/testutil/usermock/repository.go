package usermock

import (
	"context"

	domain "loanlift-backend/internal/domain/user"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn     func(ctx context.Context, a *domain.Account) error
	GetByEmailFn func(ctx context.Context, email string) (*domain.Account, error)
	ListFn       func(ctx context.Context) ([]domain.Account, error)
	SaveFn       func(ctx context.Context, a *domain.Account) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Account, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, a *domain.Account) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

// Stored builds a mock over a fixed set of accounts keyed by email, enough
// for most Authorize paths.
func Stored(accounts ...*domain.Account) *Repo {
	byEmail := map[string]*domain.Account{}
	for _, a := range accounts {
		byEmail[a.Email] = a
	}
	return &Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*domain.Account, error) {
			if a, ok := byEmail[email]; ok {
				return a, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}
