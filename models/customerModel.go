package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Membership string

const (
	MembershipBronze Membership = "bronze"
	MembershipSilver Membership = "silver"
	MembershipGold   Membership = "gold"
)

type Customer struct {
	gorm.Model
	UserID     uint            `gorm:"uniqueIndex" json:"userId"`
	Phone      string          `json:"phone"`
	BirthDate  *datatypes.Date `json:"birthDate"`
	Membership Membership      `gorm:"type:VARCHAR(10);default:'bronze'" json:"membership"`
	Addresses  []Address       `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
}

type Address struct {
	gorm.Model
	CustomerID uint   `json:"customerId"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	Zipcode    string `json:"zipcode"`
}
