package uow

import (
	"context"

	"loanlift-backend/internal/domain/application"
	"loanlift-backend/internal/domain/loanoffer"
	"loanlift-backend/internal/domain/payment"
	"loanlift-backend/internal/domain/user"
)

type Repos struct {
	Applications application.Repository
	Payments     payment.Repository
	Offers       loanoffer.Repository
	Users        user.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.Application) error) error
}
