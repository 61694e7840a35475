package user

import (
	"context"
	"errors"
	"slices"

	"loanlift-backend/internal/domain/apperr"
	domain "loanlift-backend/internal/domain/user"

	"gorm.io/gorm"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type RegisterInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

// Register is idempotent: re-registering an existing email returns the
// stored account untouched.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*domain.Account, error) {
	if in.Email == "" {
		return nil, apperr.Validationf("email is required")
	}

	existing, err := u.repo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	a := &domain.Account{
		Email:    in.Email,
		Name:     in.Name,
		PhotoURL: in.PhotoURL,
		Role:     domain.RoleBorrower,
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Authorize resolves the verified principal to a stored account and checks
// it against the allowed roles. It is the single role guard composed ahead
// of every role-gated operation.
func (u *Usecase) Authorize(ctx context.Context, email string, roles ...domain.Role) (*domain.Account, error) {
	if email == "" {
		return nil, apperr.ErrUnauthorized
	}
	a, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Forbiddenf("no account for %s", email)
		}
		return nil, err
	}
	if a.Suspended {
		return nil, apperr.Forbiddenf("account suspended")
	}
	if len(roles) > 0 && !slices.Contains(roles, a.Role) {
		return nil, apperr.Forbiddenf("role %s not allowed", a.Role)
	}
	return a, nil
}

func (u *Usecase) List(ctx context.Context) ([]domain.Account, error) {
	return u.repo.List(ctx)
}

func (u *Usecase) SetRole(ctx context.Context, email string, role domain.Role) (*domain.Account, error) {
	switch role {
	case domain.RoleBorrower, domain.RoleManager, domain.RoleAdmin:
	default:
		return nil, apperr.Validationf("unknown role %q", role)
	}
	a, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user %s", email)
		}
		return nil, err
	}
	a.Role = role
	if err := u.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (u *Usecase) SetSuspended(ctx context.Context, email string, suspended bool, reason string) (*domain.Account, error) {
	a, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user %s", email)
		}
		return nil, err
	}
	a.Suspended = suspended
	a.SuspendReason = reason
	if !suspended {
		a.SuspendReason = ""
	}
	if err := u.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
