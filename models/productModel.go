package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product mirrors one entry of the upstream catalog. ExternalID is the
// upstream catalog id (serialized as "id", the identifier clients use);
// gorm.Model.ID is this store's own key.
type Product struct {
	gorm.Model
	ExternalID  uint           `json:"id" gorm:"uniqueIndex"`
	Title       string         `json:"title"`
	Price       float64        `json:"price"`
	Description string         `json:"description"`
	Category    string         `json:"category" gorm:"index"`
	Image       string         `json:"image"`
	Rating      datatypes.JSON `json:"rating"`
}
