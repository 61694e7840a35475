package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loanlift-backend/internal/domain/apperr"
	domain "loanlift-backend/internal/domain/application"
	"loanlift-backend/internal/domain/uow"
	"loanlift-backend/internal/domain/user"
	"loanlift-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(repo domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, uow: tx}
}

// Submit creates a pending, unpaid application. The offer reference is
// soft: a dangling offer id is stored as-is.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*ApplicationDTO, error) {
	if in.Email == "" {
		return nil, apperr.Validationf("borrower identity is required")
	}
	if in.OfferID == "" {
		return nil, apperr.Validationf("offer_id is required")
	}

	a := &domain.Application{
		ApplicationID: id.NewID32(),
		OfferID:       in.OfferID,
		Email:         in.Email,
		MonthlyIncome: in.MonthlyIncome,
		Purpose:       in.Purpose,
		Extras:        []byte(in.Extras),
		Status:        domain.StatusPending,
		FeeStatus:     domain.FeeUnpaid,
		AppliedAt:     time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) ListForUser(ctx context.Context, email string) ([]ApplicationDTO, error) {
	if email == "" {
		return nil, apperr.Validationf("email is required")
	}
	list, err := u.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

func (u *Usecase) ListPending(ctx context.Context) ([]ApplicationDTO, error) {
	list, err := u.repo.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

func (u *Usecase) ListApproved(ctx context.Context) ([]ApplicationDTO, error) {
	list, err := u.repo.ListByStatus(ctx, domain.StatusApproved)
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

// Approve transitions pending → approved and marks the fee paid. The fee
// side effect is intentional source behavior: manager approval completes
// the fee axis without the settlement coordinator, unlike the
// borrower-initiated checkout path.
func (u *Usecase) Approve(ctx context.Context, applicationID string, actor Actor) (*ApplicationDTO, error) {
	if actor.Role != user.RoleManager {
		return nil, apperr.Forbiddenf("approve requires the manager role")
	}
	return u.transition(ctx, applicationID, func(a *domain.Application) {
		now := time.Now().UTC()
		a.Status = domain.StatusApproved
		a.FeeStatus = domain.FeePaid
		a.ApprovedAt = &now
	})
}

func (u *Usecase) Reject(ctx context.Context, applicationID string, actor Actor) (*ApplicationDTO, error) {
	if actor.Role != user.RoleManager {
		return nil, apperr.Forbiddenf("reject requires the manager role")
	}
	return u.transition(ctx, applicationID, func(a *domain.Application) {
		now := time.Now().UTC()
		a.Status = domain.StatusRejected
		a.RejectedAt = &now
	})
}

// Cancel is borrower-initiated and restricted to the owning borrower. The
// record is kept (status mutation, not deletion) so any payment trail
// stays auditable.
func (u *Usecase) Cancel(ctx context.Context, applicationID string, actor Actor) (*ApplicationDTO, error) {
	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.Application) error {
		if a.Email != actor.Email {
			return apperr.Forbiddenf("only the owning borrower may cancel")
		}
		if a.Status.Terminal() {
			return transitionConflict(a.Status)
		}
		now := time.Now().UTC()
		a.Status = domain.StatusCancelled
		a.CancelledAt = &now
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, mapTxErr(err, applicationID)
	}
	return dto, nil
}

// transition runs a pending-only status mutation under the row lock.
func (u *Usecase) transition(ctx context.Context, applicationID string, mutate func(a *domain.Application)) (*ApplicationDTO, error) {
	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.Application) error {
		if a.Status.Terminal() {
			return transitionConflict(a.Status)
		}
		mutate(a)
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, mapTxErr(err, applicationID)
	}
	return dto, nil
}

func transitionConflict(s domain.Status) error {
	return fmt.Errorf("%w: application already %s", apperr.ErrConflict, s)
}

func mapTxErr(err error, applicationID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFoundf("application %s", applicationID)
	}
	return err
}
