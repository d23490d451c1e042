package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `gorm:"uniqueIndex" json:"username"`
	Email     string `gorm:"uniqueIndex" json:"email"`
	Password  string `json:"-"`
	Role      string `json:"role"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
