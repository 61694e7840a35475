package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM) ---

type applicationSQLite struct {
	ID            uint64         `gorm:"primaryKey;column:id"`
	ApplicationID string         `gorm:"size:32;uniqueIndex;column:application_id"`
	OfferID       string         `gorm:"size:32;column:offer_id"`
	Email         string         `gorm:"size:191;column:email"`
	MonthlyIncome float64        `gorm:"column:monthly_income"`
	Purpose       string         `gorm:"type:text;column:purpose"`
	Extras        []byte         `gorm:"column:extras"`
	Status        string         `gorm:"type:text;column:status"` // ← no enum
	FeeStatus     string         `gorm:"type:text;column:fee_status"`
	PaymentStatus string         `gorm:"column:payment_status"`
	TransactionID string         `gorm:"column:transaction_id"`
	TrackingID    string         `gorm:"column:tracking_id"`
	AppliedAt     time.Time      `gorm:"column:applied_at"`
	ApprovedAt    *time.Time     `gorm:"column:approved_at"`
	RejectedAt    *time.Time     `gorm:"column:rejected_at"`
	CancelledAt   *time.Time     `gorm:"column:cancelled_at"`
	PaidAt        *time.Time     `gorm:"column:paid_at"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (applicationSQLite) TableName() string { return "applications" }

type paymentRecordSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	ApplicationID string    `gorm:"size:32;column:application_id"`
	LoanTitle     string    `gorm:"column:loan_title"`
	Amount        float64   `gorm:"column:amount"`
	Currency      string    `gorm:"column:currency"`
	Email         string    `gorm:"column:email"`
	TransactionID string    `gorm:"uniqueIndex;column:transaction_id"` // idempotency key
	Status        string    `gorm:"column:status"`
	TrackingID    string    `gorm:"column:tracking_id"`
	PaidAt        time.Time `gorm:"column:paid_at"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (paymentRecordSQLite) TableName() string { return "payment_records" }

type loanOfferSQLite struct {
	ID         uint64         `gorm:"primaryKey;column:id"`
	OfferID    string         `gorm:"size:32;uniqueIndex;column:offer_id"`
	Title      string         `gorm:"column:title"`
	Category   string         `gorm:"column:category"`
	Amount     float64        `gorm:"column:amount"`
	Interest   float64        `gorm:"column:interest"`
	ShowOnHome bool           `gorm:"column:show_on_home"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanOfferSQLite) TableName() string { return "loan_offers" }

type userAccountSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	Email         string    `gorm:"uniqueIndex;column:email"`
	Name          string    `gorm:"column:name"`
	PhotoURL      string    `gorm:"column:photo_url"`
	Role          string    `gorm:"type:text;column:role"` // ← no enum
	Suspended     bool      `gorm:"column:suspended"`
	SuspendReason string    `gorm:"column:suspend_reason"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (userAccountSQLite) TableName() string { return "user_accounts" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas above, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&applicationSQLite{},
		&paymentRecordSQLite{},
		&loanOfferSQLite{},
		&userAccountSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
