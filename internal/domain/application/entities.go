package application

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

type FeeStatus string

const (
	FeeUnpaid FeeStatus = "unpaid"
	FeePaid   FeeStatus = "paid"
)

// Terminal reports whether no further status transition is allowed.
func (s Status) Terminal() bool { return s != StatusPending }

type Application struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string    `gorm:"size:32;uniqueIndex:ux_applications_application_id_active" json:"application_id"`
	OfferID       string    `gorm:"size:32;index" json:"offer_id"`
	Email         string    `gorm:"size:191;index:idx_applications_email" json:"email"`
	MonthlyIncome float64   `gorm:"type:decimal(18,2)" json:"monthly_income"`
	Purpose       string    `gorm:"type:text" json:"purpose"`
	Extras        []byte    `gorm:"type:json" json:"extras,omitempty"`
	Status        Status    `gorm:"type:enum('pending','approved','rejected','cancelled');default:'pending';index" json:"status"`
	FeeStatus     FeeStatus `gorm:"type:enum('unpaid','paid');default:'unpaid'" json:"fee_status"`
	// PaymentStatus mirrors the processor-reported status once settled.
	PaymentStatus string         `gorm:"size:32" json:"payment_status,omitempty"`
	TransactionID string         `gorm:"size:191" json:"transaction_id,omitempty"`
	TrackingID    string         `gorm:"size:32" json:"tracking_id,omitempty"`
	AppliedAt     time.Time      `json:"applied_at"`
	ApprovedAt    *time.Time     `json:"approved_at,omitempty"`
	RejectedAt    *time.Time     `json:"rejected_at,omitempty"`
	CancelledAt   *time.Time     `json:"cancelled_at,omitempty"`
	PaidAt        *time.Time     `json:"paid_at,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"-"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Application) TableName() string { return "applications" }
