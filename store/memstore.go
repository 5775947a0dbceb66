package store

import (
	"context"
	"sync"
	"time"

	"github.com/shopnest/api/models"
)

// MemStore is a map-backed Store. It serves as the backend when no database
// DSN is configured and as the storage under the package tests. All reads
// hand out copies so callers can mutate aggregates freely before saving.
type MemStore struct {
	mu        sync.RWMutex
	users     map[uint]models.User
	products  map[uint]models.Product
	carts     map[uint]models.Cart
	wishlists map[uint]models.Wishlist

	userSeq     uint
	productSeq  uint
	cartSeq     uint
	wishlistSeq uint
	itemSeq     uint
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		users:     map[uint]models.User{},
		products:  map[uint]models.Product{},
		carts:     map[uint]models.Cart{},
		wishlists: map[uint]models.Wishlist{},
	}
}

func (s *MemStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return ErrEmailTaken
		}
	}

	s.userSeq++
	user.ID = s.userSeq
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = *user
	return nil
}

func (s *MemStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) ReplaceCatalog(_ context.Context, products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = map[uint]models.Product{}
	for i := range products {
		s.productSeq++
		products[i].ID = s.productSeq
		products[i].CreatedAt = time.Now()
		products[i].UpdatedAt = products[i].CreatedAt
		s.products[products[i].ID] = products[i]
	}
	return nil
}

func (s *MemStore) Products(_ context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0, len(s.products))
	for _, product := range s.products {
		products = append(products, product)
	}
	return products, nil
}

func (s *MemStore) ProductByExternalID(_ context.Context, externalID uint) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, product := range s.products {
		if product.ExternalID == externalID {
			p := product
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) ProductsByCategory(_ context.Context, category string) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := []models.Product{}
	for _, product := range s.products {
		if product.Category == category {
			products = append(products, product)
		}
	}
	return products, nil
}

func (s *MemStore) Categories(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]bool{}
	categories := []string{}
	for _, product := range s.products {
		if !seen[product.Category] {
			seen[product.Category] = true
			categories = append(categories, product.Category)
		}
	}
	return categories, nil
}

func (s *MemStore) CartByUser(_ context.Context, userID uint) (*models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[userID]
	if !ok {
		return nil, ErrNotFound
	}

	copied := cart
	copied.Items = make([]models.CartItem, len(cart.Items))
	copy(copied.Items, cart.Items)
	for i := range copied.Items {
		if product, ok := s.products[copied.Items[i].ProductID]; ok {
			copied.Items[i].Product = product
		}
	}
	return &copied, nil
}

func (s *MemStore) SaveCart(_ context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart.ID == 0 {
		s.cartSeq++
		cart.ID = s.cartSeq
		cart.CreatedAt = time.Now()
	}
	cart.UpdatedAt = time.Now()
	for i := range cart.Items {
		if cart.Items[i].ID == 0 {
			s.itemSeq++
			cart.Items[i].ID = s.itemSeq
		}
		cart.Items[i].CartID = cart.ID
	}

	stored := *cart
	stored.Items = make([]models.CartItem, len(cart.Items))
	copy(stored.Items, cart.Items)
	s.carts[cart.UserID] = stored
	return nil
}

func (s *MemStore) WishlistByUser(_ context.Context, userID uint) (*models.Wishlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wishlist, ok := s.wishlists[userID]
	if !ok {
		return nil, ErrNotFound
	}

	copied := wishlist
	copied.Products = make([]models.Product, len(wishlist.Products))
	copy(copied.Products, wishlist.Products)
	for i := range copied.Products {
		if product, ok := s.products[copied.Products[i].ID]; ok {
			copied.Products[i] = product
		}
	}
	return &copied, nil
}

func (s *MemStore) SaveWishlist(_ context.Context, wishlist *models.Wishlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if wishlist.ID == 0 {
		s.wishlistSeq++
		wishlist.ID = s.wishlistSeq
		wishlist.CreatedAt = time.Now()
	}
	wishlist.UpdatedAt = time.Now()

	stored := *wishlist
	stored.Products = make([]models.Product, len(wishlist.Products))
	copy(stored.Products, wishlist.Products)
	s.wishlists[wishlist.UserID] = stored
	return nil
}
