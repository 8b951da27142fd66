package payments

import "context"

// LineItem is one priced row of a checkout session, in minor units.
type LineItem struct {
	Name       string
	Image      string
	UnitAmount int64
	Quantity   int64
}

// SessionRequest describes a hosted checkout session to be created.
// Metadata travels with the session and is the system's only durable record
// of purchase intent until the payment confirms.
type SessionRequest struct {
	LineItems       []LineItem
	Currency        string
	DiscountPercent float64 // 0 means no discount
	SuccessURL      string
	CancelURL       string
	Metadata        map[string]string
}

// Session is the processor's view of a checkout session.
type Session struct {
	ID          string
	Paid        bool
	AmountTotal int64 // minor units, as confirmed by the processor
	Metadata    map[string]string
}

// Gateway abstracts the payment processor so the checkout flow can be
// exercised against a fake in tests.
type Gateway interface {
	CreateSession(ctx context.Context, req *SessionRequest) (*Session, error)
	RetrieveSession(ctx context.Context, id string) (*Session, error)
}
