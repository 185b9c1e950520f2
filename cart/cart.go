package cart

import (
	"context"

	"github.com/ku-devxd/shopbot/models"
	"github.com/ku-devxd/shopbot/store"
)

// Line is one cart entry with its computed subtotal.
type Line struct {
	Name      string
	Quantity  int
	LineTotal float64
}

// Summary is the rendered content of a cart.
type Summary struct {
	Lines      []Line
	GrandTotal float64
}

// Engine owns cart mutations. Product existence is validated upstream:
// the callback payload carries the id of a product that was just listed,
// so the engine does not re-check it.
type Engine struct {
	store store.Store
}

func NewEngine(s store.Store) *Engine {
	return &Engine{store: s}
}

// Add puts one more unit of the product into the user's cart, inserting
// the row on first add.
func (e *Engine) Add(ctx context.Context, userID int64, productID uint) (*models.CartItem, error) {
	return e.store.UpsertCartItem(ctx, userID, productID)
}

// Clear drops every line of the user's cart. Clearing an empty cart is a
// no-op.
func (e *Engine) Clear(ctx context.Context, userID int64) error {
	return e.store.ClearCart(ctx, userID)
}

// Items fetches the user's cart lines with products embedded.
func (e *Engine) Items(ctx context.Context, userID int64) ([]models.CartItem, error) {
	return e.store.GetCartItems(ctx, userID)
}

// Summarize is a pure function over already-fetched items. Empty input
// yields a zero grand total and no lines; the caller decides how to render
// an empty cart.
func Summarize(items []models.CartItem) Summary {
	var s Summary
	for _, item := range items {
		lineTotal := item.Product.Price * float64(item.Quantity)
		s.Lines = append(s.Lines, Line{
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
		s.GrandTotal += lineTotal
	}
	return s
}
