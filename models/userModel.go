package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username string `json:"username"`
	Email    string `json:"email" gorm:"uniqueIndex;size:255"`
	Password string `json:"-"`
}
