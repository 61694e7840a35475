package payment

import "context"

// SessionMetadata binds a checkout session back to the application it pays
// for; it round-trips through the processor unchanged.
type SessionMetadata struct {
	ApplicationID string `json:"application_id"`
	Email         string `json:"email"`
	LoanTitle     string `json:"loan_title"`
}

type CreateSessionInput struct {
	AmountMinor int64
	Currency    string
	SuccessURL  string
	CancelURL   string
	Metadata    SessionMetadata
}

// CheckoutSession is the processor's answer to a session-create call:
// an opaque reference plus the hosted page to redirect the payer to.
type CheckoutSession struct {
	ID  string
	URL string
}

// Session is the processor-side state retrieved after the payer returns.
type Session struct {
	ID            string
	TransactionID string
	PaymentStatus string // "paid" | "unpaid" | ...
	AmountMinor   int64
	Currency      string
	Metadata      SessionMetadata
}

const StatusPaid = "paid"

// Processor is the external hosted-checkout provider. All payment state
// lives with the processor until Settle reconciles it locally.
type Processor interface {
	CreateSession(ctx context.Context, in CreateSessionInput) (*CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*Session, error)
}
