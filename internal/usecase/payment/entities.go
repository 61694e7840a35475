package payment

import (
	"time"
)

type CreateCheckoutInput struct {
	ApplicationID string  `json:"application_id"`
	LoanTitle     string  `json:"loan_title"`
	Amount        float64 `json:"amount"` // decimal major units
	Email         string  `json:"-"`
}

type CheckoutDTO struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// SettlementDTO bundles the settlement outcome: the processor transaction
// reference, the issued tracking code, and the ledger row written (or, on a
// replayed call, previously written).
type SettlementDTO struct {
	TransactionID  string    `json:"transaction_id"`
	TrackingID     string    `json:"tracking_id"`
	ApplicationID  string    `json:"application_id"`
	Email          string    `json:"email"`
	LoanTitle      string    `json:"loan_title"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	PaidAt         time.Time `json:"paid_at"`
	AlreadySettled bool      `json:"already_settled"`
}
