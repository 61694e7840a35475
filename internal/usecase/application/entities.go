package application

import (
	"encoding/json"
	"time"

	domain "loanlift-backend/internal/domain/application"
	"loanlift-backend/internal/domain/user"
)

// Actor is the verified principal a lifecycle operation runs as. The role
// comes from the Role Authorizer, never from the request.
type Actor struct {
	Email string
	Role  user.Role
}

type SubmitInput struct {
	Email         string          `json:"-"`
	OfferID       string          `json:"offer_id"`
	MonthlyIncome float64         `json:"monthly_income"`
	Purpose       string          `json:"purpose"`
	Extras        json.RawMessage `json:"extras,omitempty"`
}

type ApplicationDTO struct {
	ApplicationID string           `json:"application_id"`
	OfferID       string           `json:"offer_id"`
	Email         string           `json:"email"`
	MonthlyIncome float64          `json:"monthly_income"`
	Purpose       string           `json:"purpose"`
	Extras        json.RawMessage  `json:"extras,omitempty"`
	Status        domain.Status    `json:"status"`
	FeeStatus     domain.FeeStatus `json:"fee_status"`
	PaymentStatus string           `json:"payment_status,omitempty"`
	TransactionID string           `json:"transaction_id,omitempty"`
	TrackingID    string           `json:"tracking_id,omitempty"`
	AppliedAt     time.Time        `json:"applied_at"`
	ApprovedAt    *time.Time       `json:"approved_at,omitempty"`
	RejectedAt    *time.Time       `json:"rejected_at,omitempty"`
	CancelledAt   *time.Time       `json:"cancelled_at,omitempty"`
	PaidAt        *time.Time       `json:"paid_at,omitempty"`
}

func toDTO(a *domain.Application) *ApplicationDTO {
	return &ApplicationDTO{
		ApplicationID: a.ApplicationID,
		OfferID:       a.OfferID,
		Email:         a.Email,
		MonthlyIncome: a.MonthlyIncome,
		Purpose:       a.Purpose,
		Extras:        json.RawMessage(a.Extras),
		Status:        a.Status,
		FeeStatus:     a.FeeStatus,
		PaymentStatus: a.PaymentStatus,
		TransactionID: a.TransactionID,
		TrackingID:    a.TrackingID,
		AppliedAt:     a.AppliedAt,
		ApprovedAt:    a.ApprovedAt,
		RejectedAt:    a.RejectedAt,
		CancelledAt:   a.CancelledAt,
		PaidAt:        a.PaidAt,
	}
}

func toDTOs(list []domain.Application) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(list))
	for i := range list {
		out = append(out, *toDTO(&list[i]))
	}
	return out
}
