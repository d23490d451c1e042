package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Collection struct {
	gorm.Model
	Title             string    `json:"title" binding:"required"`
	FeaturedProductID *uint     `json:"featuredProductId"`
	Products          []Product `json:"-"`
}

type Promotion struct {
	gorm.Model
	Description string    `json:"description" binding:"required"`
	Discount    float64   `json:"discount" binding:"required"`
	Products    []Product `gorm:"many2many:product_promotions;" json:"-"`
}

type Product struct {
	gorm.Model
	Title        string          `json:"title" binding:"required"`
	Slug         string          `json:"slug" binding:"required"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2)" binding:"required"`
	Inventory    int             `json:"inventory" binding:"min=0"`
	LastUpdate   time.Time       `json:"lastUpdate" gorm:"autoUpdateTime"`
	CollectionID uint            `json:"collectionId" binding:"required"`
	Promotions   []Promotion     `gorm:"many2many:product_promotions;" json:"promotions,omitempty"`
	Images       []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Reviews      []Review        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID uint   `json:"productId"`
}

type Review struct {
	gorm.Model
	ProductID   uint   `json:"productId"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}
