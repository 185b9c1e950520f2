package cart

import (
	"context"

	"github.com/ku-devxd/shopbot/models"
)

// mockStore implements store.Store with real upsert-increment semantics so
// engine tests can assert the one-row-per-pair invariant.
type mockStore struct {
	items    []models.CartItem
	products map[uint]models.Product
	nextID   uint
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
		return nil, nil
	}
	return &p, nil
}

func (m *mockStore) GetCartItems(_ context.Context, userID int64) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, it := range m.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockStore) UpsertCartItem(_ context.Context, userID int64, productID uint) (*models.CartItem, error) {
	for i := range m.items {
		if m.items[i].UserID == userID && m.items[i].ProductID == productID {
			m.items[i].Quantity++
			return &m.items[i], nil
		}
	}
	m.nextID++
	item := models.CartItem{ID: m.nextID, UserID: userID, ProductID: productID, Quantity: 1}
	m.items = append(m.items, item)
	return &item, nil
}

func (m *mockStore) ClearCart(_ context.Context, userID int64) error {
	kept := m.items[:0]
	for _, it := range m.items {
		if it.UserID != userID {
			kept = append(kept, it)
		}
	}
	m.items = kept
	return nil
}
