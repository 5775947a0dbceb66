package models

import "gorm.io/gorm"

// CartItem holds one product reference with its quantity. A cart never
// carries two items for the same product; adds merge into the existing item.
type CartItem struct {
	gorm.Model
	CartID    uint    `json:"cartId"`
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product" gorm:"foreignKey:ProductID"`
}

type Cart struct {
	gorm.Model
	UserID uint       `json:"userId" gorm:"index"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}
