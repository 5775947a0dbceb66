package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopnest/api/models"
)

// GormStore implements Store on top of a gorm connection.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", user.Email).
		Count(&count).Error; err != nil {
		return fmt.Errorf("checking for existing user: %w", err)
	}
	if count > 0 {
		return ErrEmailTaken
	}

	err := s.db.WithContext(ctx).Create(user).Error
	// The count above races with concurrent registrations; the unique index
	// on email is the authority.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

func (s *GormStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return &user, nil
}

// ReplaceCatalog is a delete-all then insert-all, deliberately not wrapped in
// a transaction: the import is an occasional administrative operation and the
// catalog can always be refetched. The delete is unscoped; soft-deleted rows
// would still occupy the external_id unique index and fail the insert.
func (s *GormStore) ReplaceCatalog(ctx context.Context, products []models.Product) error {
	if err := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(&models.Product{}).Error; err != nil {
		return fmt.Errorf("clearing catalog: %w", err)
	}

	if len(products) == 0 {
		return nil
	}

	if err := s.db.WithContext(ctx).Create(&products).Error; err != nil {
		return fmt.Errorf("inserting catalog: %w", err)
	}
	return nil
}

func (s *GormStore) Products(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("fetching products: %w", err)
	}
	return products, nil
}

func (s *GormStore) ProductByExternalID(ctx context.Context, externalID uint) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).Where("external_id = ?", externalID).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching product: %w", err)
	}
	return &product, nil
}

func (s *GormStore) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.WithContext(ctx).
		Where("category = ?", category).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("fetching products by category: %w", err)
	}
	return products, nil
}

func (s *GormStore) Categories(ctx context.Context) ([]string, error) {
	categories := []string{}
	if err := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Distinct().
		Pluck("category", &categories).Error; err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	return categories, nil
}

func (s *GormStore) CartByUser(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items.Product").
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching cart: %w", err)
	}
	return &cart, nil
}

// SaveCart rewrites the stored item list with the one on the aggregate.
// The write is an unconditional overwrite; concurrent writers for the same
// user are last-writer-wins.
func (s *GormStore) SaveCart(ctx context.Context, cart *models.Cart) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if cart.ID == 0 {
			return tx.Omit("Items.Product").Create(cart).Error
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		for i := range cart.Items {
			cart.Items[i].ID = 0
			cart.Items[i].CartID = cart.ID
		}
		if len(cart.Items) == 0 {
			return nil
		}
		return tx.Omit(clause.Associations).Create(&cart.Items).Error
	})
	if err != nil {
		return fmt.Errorf("saving cart: %w", err)
	}
	return nil
}

func (s *GormStore) WishlistByUser(ctx context.Context, userID uint) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Products").
		First(&wishlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching wishlist: %w", err)
	}
	return &wishlist, nil
}

func (s *GormStore) SaveWishlist(ctx context.Context, wishlist *models.Wishlist) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if wishlist.ID == 0 {
			return tx.Omit("Products.*").Create(wishlist).Error
		}
		return tx.Model(wishlist).Omit("Products.*").
			Association("Products").Replace(wishlist.Products)
	})
	if err != nil {
		return fmt.Errorf("saving wishlist: %w", err)
	}
	return nil
}
