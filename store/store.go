// Package store is the persistence boundary of the API. Controllers only
// see these interfaces; the gorm-backed store serves production and the
// in-memory store serves tests and DSN-less runs.
package store

import (
	"context"
	"errors"

	"github.com/shopnest/api/models"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already registered")
)

type UserStore interface {
	// CreateUser inserts the user, returning ErrEmailTaken if the email exists.
	CreateUser(ctx context.Context, user *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}

type ProductStore interface {
	// ReplaceCatalog drops every product and inserts the given set.
	ReplaceCatalog(ctx context.Context, products []models.Product) error
	Products(ctx context.Context) ([]models.Product, error)
	ProductByExternalID(ctx context.Context, externalID uint) (*models.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]models.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

type CartStore interface {
	// CartByUser returns the user's cart with item products joined,
	// or ErrNotFound.
	CartByUser(ctx context.Context, userID uint) (*models.Cart, error)
	// SaveCart persists the whole aggregate, overwriting the stored item list.
	SaveCart(ctx context.Context, cart *models.Cart) error
}

type WishlistStore interface {
	WishlistByUser(ctx context.Context, userID uint) (*models.Wishlist, error)
	SaveWishlist(ctx context.Context, wishlist *models.Wishlist) error
}

type Store interface {
	UserStore
	ProductStore
	CartStore
	WishlistStore
}
