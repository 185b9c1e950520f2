package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ku-devxd/shopbot/cart"
	"github.com/ku-devxd/shopbot/payment"
	"github.com/ku-devxd/shopbot/store"
)

// ErrEmptyCart signals a checkout on an empty cart. It is normal control
// flow, not a failure: the caller prompts the user to add items first.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// ErrGatewayFailure wraps a failed payment-gateway call. The cart is left
// untouched so the user can retry.
var ErrGatewayFailure = errors.New("checkout: payment gateway failure")

// Result of a successful checkout or single-item purchase.
type Result struct {
	Handle *payment.Handle
	Total  float64
}

// Orchestrator turns a cart into a payment request and clears the cart
// only after the gateway confirms creation.
type Orchestrator struct {
	store     store.Store
	cart      *cart.Engine
	gateway   payment.Gateway
	currency  string
	returnURL string
}

func NewOrchestrator(s store.Store, e *cart.Engine, gw payment.Gateway, currency, returnURL string) *Orchestrator {
	return &Orchestrator{
		store:     s,
		cart:      e,
		gateway:   gw,
		currency:  currency,
		returnURL: returnURL,
	}
}

// Checkout pays for the whole cart. Ordering invariant: the cart is
// cleared strictly after the gateway confirms request creation, never
// before, and never when the gateway call fails.
func (o *Orchestrator) Checkout(ctx context.Context, userID int64) (*Result, error) {
	items, err := o.cart.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	summary := cart.Summarize(items)

	parts := make([]string, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		parts = append(parts, fmt.Sprintf("%s x%d", line.Name, line.Quantity))
	}

	handle, err := o.gateway.CreatePayment(ctx, payment.Request{
		Amount:      summary.GrandTotal,
		Currency:    o.currency,
		Description: strings.Join(parts, ", "),
		ReturnURL:   o.returnURL,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}

	if err := o.cart.Clear(ctx, userID); err != nil {
		// Payment was created; the next checkout would double-charge these
		// lines, so surface the store failure instead of hiding it.
		return nil, err
	}

	return &Result{Handle: handle, Total: summary.GrandTotal}, nil
}

// BuyProduct pays for a single product directly. It bypasses the cart
// entirely: no cart row is read, written or cleared.
func (o *Orchestrator) BuyProduct(ctx context.Context, userID int64, productID uint) (*Result, error) {
	product, err := o.store.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	handle, err := o.gateway.CreatePayment(ctx, payment.Request{
		Amount:      product.Price,
		Currency:    o.currency,
		Description: product.Name,
		ReturnURL:   o.returnURL,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}

	return &Result{Handle: handle, Total: product.Price}, nil
}
