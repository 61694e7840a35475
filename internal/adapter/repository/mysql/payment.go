package mysql

import (
	"context"
	"errors"
	"strings"

	"loanlift-backend/internal/domain/apperr"
	payDomain "loanlift-backend/internal/domain/payment"

	"gorm.io/gorm"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

// CreateIfAbsent inserts the ledger row, treating a duplicate transaction_id
// as apperr.ErrConflict. The unique index makes the insert the atomic
// settle-once primitive; two racing settlements cannot both succeed.
func (r *PaymentRepository) CreateIfAbsent(ctx context.Context, rec *payDomain.Record) error {
	err := r.db.WithContext(ctx).Create(rec).Error
	if err == nil {
		return nil
	}
	if isDuplicateKey(err) {
		return apperr.ErrConflict
	}
	return err
}

func (r *PaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*payDomain.Record, error) {
	var out payDomain.Record
	res := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]payDomain.Record, error) {
	var out []payDomain.Record
	res := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("paid_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// isDuplicateKey matches MySQL error 1062 and the SQLite equivalent used in
// tests; gorm.ErrDuplicatedKey covers drivers with error translation on.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
