package models

import "gorm.io/gorm"

// Wishlist is a set of product references: no quantities, no duplicates.
type Wishlist struct {
	gorm.Model
	UserID   uint      `json:"userId" gorm:"index"`
	Products []Product `json:"products" gorm:"many2many:wishlist_products;constraint:OnDelete:CASCADE"`
}
