package payment

import (
	"time"
)

// Record is one settled payment. Rows are append-only: the unique index on
// transaction_id is the settlement idempotency key, and nothing updates or
// deletes a row after insertion.
type Record struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string    `gorm:"size:32;index" json:"application_id"`
	LoanTitle     string    `gorm:"size:191" json:"loan_title"`
	Amount        float64   `gorm:"type:decimal(18,2)" json:"amount"`
	Currency      string    `gorm:"size:3" json:"currency"`
	Email         string    `gorm:"size:191;index:idx_payment_records_email" json:"email"`
	TransactionID string    `gorm:"size:191;uniqueIndex:ux_payment_records_transaction_id" json:"transaction_id"`
	Status        string    `gorm:"size:32" json:"status"`
	TrackingID    string    `gorm:"size:32" json:"tracking_id"`
	PaidAt        time.Time `json:"paid_at"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Record) TableName() string { return "payment_records" }
