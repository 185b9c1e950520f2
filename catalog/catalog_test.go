package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ku-devxd/shopbot/models"
)

// mockStore records the category passed to ListProducts.
type mockStore struct {
	products       []models.Product
	listedCategory *string
}

func (m *mockStore) GetUser(context.Context, int64) (*models.User, error) { return nil, nil }

func (m *mockStore) UpsertUserLang(context.Context, int64, string) (*models.User, error) {
	return nil, nil
}

func (m *mockStore) CreateProduct(context.Context, *models.Product) error { return nil }

func (m *mockStore) ListProducts(_ context.Context, category string) ([]models.Product, error) {
	m.listedCategory = &category
	if category == "" {
		return m.products, nil
	}
	var out []models.Product
	for _, p := range m.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockStore) GetProduct(context.Context, uint) (*models.Product, error) { return nil, nil }

func (m *mockStore) GetCartItems(context.Context, int64) ([]models.CartItem, error) {
	return nil, nil
}

func (m *mockStore) UpsertCartItem(context.Context, int64, uint) (*models.CartItem, error) {
	return nil, nil
}

func (m *mockStore) ClearCart(context.Context, int64) error { return nil }

func TestCategories_FixedSet(t *testing.T) {
	s := NewService(&mockStore{})
	assert.Equal(t, []string{"all", "men", "women", "electronics"}, s.Categories())
}

func TestBrowse_AllIsUnfiltered(t *testing.T) {
	mock := &mockStore{products: []models.Product{
		{Name: "Shirt", Category: models.CategoryMen},
		{Name: "Dress", Category: models.CategoryWomen},
	}}
	s := NewService(mock)

	products, err := s.Browse(context.Background(), CategoryAll)
	require.NoError(t, err)
	assert.Len(t, products, 2)
	require.NotNil(t, mock.listedCategory)
	assert.Equal(t, "", *mock.listedCategory)
}

func TestBrowse_EmptyCategoryIsNotAnError(t *testing.T) {
	s := NewService(&mockStore{})

	products, err := s.Browse(context.Background(), models.CategoryElectronics)
	require.NoError(t, err)
	assert.Empty(t, products)
}
