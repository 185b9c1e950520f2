package payment

import "context"

// Request is the single payment-creation call the storefront makes.
type Request struct {
	Amount      float64
	Currency    string
	Description string
	// ReturnURL is where the gateway redirects the customer afterwards.
	ReturnURL string
}

// Handle identifies a created payment and carries the redirect URL the
// customer must open to pay.
type Handle struct {
	ID              string
	ConfirmationURL string
}

// Gateway is the external payment collaborator: one synchronous call with
// two outcomes, success-with-handle or failure.
type Gateway interface {
	CreatePayment(ctx context.Context, req Request) (*Handle, error)
}
