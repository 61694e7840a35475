package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loanlift-backend/internal/domain/apperr"
	appDomain "loanlift-backend/internal/domain/application"
	domain "loanlift-backend/internal/domain/payment"
	"loanlift-backend/internal/domain/uow"
	"loanlift-backend/pkg/id"
	"loanlift-backend/pkg/money"

	"gorm.io/gorm"
)

const settleLockTTL = 60 * time.Second

// Locker narrows the settlement race window. It is best-effort: losing the
// lock only means the unique transaction index resolves the race instead.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// Config carries the redirect targets and ledger currency for checkout
// session creation.
type Config struct {
	SuccessURL string
	CancelURL  string
	Currency   string
}

type Usecase struct {
	uow       uow.UnitOfWork
	payments  domain.Repository
	processor domain.Processor
	locker    Locker
	cfg       Config
}

func NewUsecase(tx uow.UnitOfWork, payments domain.Repository, processor domain.Processor, locker Locker, cfg Config) *Usecase {
	return &Usecase{uow: tx, payments: payments, processor: processor, locker: locker, cfg: cfg}
}

// CreateCheckout opens a hosted checkout session with the processor for the
// application fee. No local state is written; everything lives with the
// processor until Settle.
func (u *Usecase) CreateCheckout(ctx context.Context, in CreateCheckoutInput) (*CheckoutDTO, error) {
	if in.Email == "" {
		return nil, apperr.Validationf("payer identity is required")
	}
	if in.ApplicationID == "" {
		return nil, apperr.Validationf("application_id is required")
	}
	if in.Amount <= 0 {
		return nil, apperr.Validationf("amount must be a positive number")
	}

	sess, err := u.processor.CreateSession(ctx, domain.CreateSessionInput{
		AmountMinor: money.ToMinor(in.Amount),
		Currency:    u.cfg.Currency,
		SuccessURL:  u.cfg.SuccessURL,
		CancelURL:   u.cfg.CancelURL,
		Metadata: domain.SessionMetadata{
			ApplicationID: in.ApplicationID,
			Email:         in.Email,
			LoanTitle:     in.LoanTitle,
		},
	})
	if err != nil {
		return nil, apperr.Upstreamf("create checkout session: %v", err)
	}
	return &CheckoutDTO{SessionID: sess.ID, URL: sess.URL}, nil
}

// Settle reconciles processor state for a returned session into the
// application and the payment ledger. Safe to call repeatedly for the same
// transaction: replays return the originally recorded result.
func (u *Usecase) Settle(ctx context.Context, sessionRef string) (*SettlementDTO, error) {
	if sessionRef == "" {
		return nil, apperr.Validationf("missing session reference")
	}

	sess, err := u.processor.GetSession(ctx, sessionRef)
	if err != nil {
		return nil, apperr.Upstreamf("retrieve session %s: %v", sessionRef, err)
	}
	if sess.TransactionID == "" {
		return nil, apperr.Upstreamf("session %s carries no transaction reference", sessionRef)
	}
	txID := sess.TransactionID

	if u.locker != nil {
		if ok, lockErr := u.locker.Acquire(ctx, "settle:"+txID, settleLockTTL); lockErr == nil && ok {
			defer func() { _ = u.locker.Release(context.WithoutCancel(ctx), "settle:"+txID) }()
		}
	}

	// Replay check: a prior record is the canonical result.
	if prior, err := u.payments.GetByTransactionID(ctx, txID); err == nil {
		return priorResult(prior), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if sess.PaymentStatus != domain.StatusPaid {
		return nil, fmt.Errorf("%w: processor reports %q", apperr.ErrPaymentIncomplete, sess.PaymentStatus)
	}

	now := time.Now().UTC()
	tracking := id.NewTrackingCode(now)

	var dto *SettlementDTO
	err = u.uow.WithinApplicationTx(ctx, sess.Metadata.ApplicationID, func(r uow.Repos, a *appDomain.Application) error {
		a.FeeStatus = appDomain.FeePaid
		a.PaymentStatus = domain.StatusPaid
		a.TransactionID = txID
		a.TrackingID = tracking
		a.PaidAt = &now
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		rec := &domain.Record{
			ApplicationID: a.ApplicationID,
			LoanTitle:     sess.Metadata.LoanTitle,
			Amount:        money.FromMinor(sess.AmountMinor),
			Currency:      sess.Currency,
			Email:         sess.Metadata.Email,
			TransactionID: txID,
			Status:        sess.PaymentStatus,
			TrackingID:    tracking,
			PaidAt:        now,
		}
		if err := r.Payments.CreateIfAbsent(ctx, rec); err != nil {
			return err
		}

		dto = &SettlementDTO{
			TransactionID: txID,
			TrackingID:    tracking,
			ApplicationID: a.ApplicationID,
			Email:         rec.Email,
			LoanTitle:     rec.LoanTitle,
			Amount:        rec.Amount,
			Currency:      rec.Currency,
			PaidAt:        now,
		}
		return nil
	})
	switch {
	case err == nil:
		return dto, nil
	case errors.Is(err, apperr.ErrConflict):
		// A racing settlement won; its rolled-in record is the result.
		prior, loadErr := u.payments.GetByTransactionID(ctx, txID)
		if loadErr != nil {
			return nil, loadErr
		}
		return priorResult(prior), nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperr.NotFoundf("application %s", sess.Metadata.ApplicationID)
	default:
		return nil, err
	}
}

// ListPayments returns the caller's own ledger rows, newest first. A filter
// for any other principal is rejected.
func (u *Usecase) ListPayments(ctx context.Context, callerEmail, filterEmail string) ([]domain.Record, error) {
	if callerEmail == "" {
		return nil, apperr.ErrUnauthorized
	}
	if filterEmail != "" && filterEmail != callerEmail {
		return nil, apperr.Forbiddenf("may only list own payment history")
	}
	return u.payments.ListByEmail(ctx, callerEmail)
}

func priorResult(rec *domain.Record) *SettlementDTO {
	return &SettlementDTO{
		TransactionID:  rec.TransactionID,
		TrackingID:     rec.TrackingID,
		ApplicationID:  rec.ApplicationID,
		Email:          rec.Email,
		LoanTitle:      rec.LoanTitle,
		Amount:         rec.Amount,
		Currency:       rec.Currency,
		PaidAt:         rec.PaidAt,
		AlreadySettled: true,
	}
}
