package catalog

import (
	"context"

	"github.com/ku-devxd/shopbot/models"
	"github.com/ku-devxd/shopbot/store"
)

// CategoryAll maps to an unfiltered listing; it is a browse key, not a
// value ever stored on a product.
const CategoryAll = "all"

// Service lists the fixed category set and products within a category.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Categories returns the static browse set. It is not derived from the
// store, so an empty catalog still renders the same menu.
func (s *Service) Categories() []string {
	return []string{
		CategoryAll,
		models.CategoryMen,
		models.CategoryWomen,
		models.CategoryElectronics,
	}
}

// Browse returns the products of a category. An empty result is a valid
// outcome; the caller renders its "no products" message, not an error.
func (s *Service) Browse(ctx context.Context, category string) ([]models.Product, error) {
	if category == CategoryAll {
		category = ""
	}
	return s.store.ListProducts(ctx, category)
}
