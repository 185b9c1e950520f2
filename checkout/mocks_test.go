package checkout

import (
	"context"
	"errors"

	"github.com/ku-devxd/shopbot/models"
	"github.com/ku-devxd/shopbot/payment"
	"github.com/ku-devxd/shopbot/store"
)

// mockStore implements store.Store and records every cart access so tests
// can prove BuyProduct never touches cart rows.
type mockStore struct {
	products map[uint]models.Product
	items    []models.CartItem

	cartReads   int
	cartUpserts int
	cartClears  int
	getItemsErr error
}

func (m *mockStore) GetUser(context.Context, int64) (*models.User, error) { return nil, nil }

func (m *mockStore) UpsertUserLang(context.Context, int64, string) (*models.User, error) {
	return nil, nil
}

func (m *mockStore) CreateProduct(context.Context, *models.Product) error { return nil }

func (m *mockStore) ListProducts(context.Context, string) ([]models.Product, error) {
	return nil, nil
}

func (m *mockStore) GetProduct(_ context.Context, id uint) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (m *mockStore) GetCartItems(_ context.Context, userID int64) ([]models.CartItem, error) {
	m.cartReads++
	if m.getItemsErr != nil {
		return nil, m.getItemsErr
	}
	var out []models.CartItem
	for _, it := range m.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockStore) UpsertCartItem(context.Context, int64, uint) (*models.CartItem, error) {
	m.cartUpserts++
	return nil, errors.New("unexpected cart mutation")
}

func (m *mockStore) ClearCart(_ context.Context, userID int64) error {
	m.cartClears++
	kept := m.items[:0]
	for _, it := range m.items {
		if it.UserID != userID {
			kept = append(kept, it)
		}
	}
	m.items = kept
	return nil
}

// mockGateway implements payment.Gateway and captures the request.
type mockGateway struct {
	handle   *payment.Handle
	err      error
	calls    int
	captured payment.Request
}

func (m *mockGateway) CreatePayment(_ context.Context, req payment.Request) (*payment.Handle, error) {
	m.calls++
	m.captured = req
	if m.err != nil {
		return nil, m.err
	}
	return m.handle, nil
}
