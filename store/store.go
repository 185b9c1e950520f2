package store

import (
	"context"
	"errors"

	"github.com/ku-devxd/shopbot/models"
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.New("store: record not found")

// Store is the single source of truth for users, products and cart items.
// All operations are atomic at single-row/single-user granularity; any of
// them may fail when the database is unreachable, and callers are expected
// to surface a generic error to the end user instead of crashing.
type Store interface {
	// GetUser returns the user, creating it with the default language on
	// first interaction.
	GetUser(ctx context.Context, id int64) (*models.User, error)
	UpsertUserLang(ctx context.Context, id int64, lang string) (*models.User, error)

	CreateProduct(ctx context.Context, p *models.Product) error
	// ListProducts returns products in a category; an empty category means
	// an unfiltered listing. An empty result is a valid outcome.
	ListProducts(ctx context.Context, category string) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)

	// GetCartItems returns the user's cart lines with the Product embedded.
	GetCartItems(ctx context.Context, userID int64) ([]models.CartItem, error)
	// UpsertCartItem increments the quantity of an existing (user, product)
	// row or inserts a new one with quantity 1.
	UpsertCartItem(ctx context.Context, userID int64, productID uint) (*models.CartItem, error)
	// ClearCart removes every cart row of the user. Clearing an empty cart
	// is a no-op.
	ClearCart(ctx context.Context, userID int64) error
}
