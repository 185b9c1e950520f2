package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ku-devxd/shopbot/models"
)

// GormStore implements Store on top of a gorm DB handle.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate creates the three tables if absent.
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
	)
}

func (s *GormStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{ID: id, Lang: models.LangEnglish}
		// DO NOTHING keeps two concurrent first messages from erroring on
		// the duplicate insert
		err := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&user).Error
		if err != nil {
			return nil, fmt.Errorf("create user %d: %w", id, err)
		}
		return &user, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

func (s *GormStore) UpsertUserLang(ctx context.Context, id int64, lang string) (*models.User, error) {
	user := models.User{ID: id, Lang: lang}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"lang": lang}),
		}).
		Create(&user).Error
	if err != nil {
		return nil, fmt.Errorf("upsert user %d lang: %w", id, err)
	}
	return &user, nil
}

func (s *GormStore) CreateProduct(ctx context.Context, p *models.Product) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (s *GormStore) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	q := s.db.WithContext(ctx)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *GormStore) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &product, nil
}

func (s *GormStore) GetCartItems(ctx context.Context, userID int64) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("get cart items: %w", err)
	}
	return items, nil
}

// UpsertCartItem runs inside a transaction with a row lock so two rapid
// adds from the same user serialize at the database instead of losing an
// increment.
func (s *GormStore) UpsertCartItem(ctx context.Context, userID int64, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.CartItem{UserID: userID, ProductID: productID, Quantity: 1}
			return tx.Create(&item).Error
		}
		if err != nil {
			return err
		}
		item.Quantity++
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, fmt.Errorf("upsert cart item: %w", err)
	}
	return &item, nil
}

func (s *GormStore) ClearCart(ctx context.Context, userID int64) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
