package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"size:255;not null"`
	Description string     `json:"description" gorm:"type:text"`
	ParentID    *uint      `json:"parentId" gorm:"index"`
	Children    []Category `json:"-" gorm:"foreignKey:ParentID"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type ProductImage struct {
	gorm.Model
	Url       string `json:"url"`
	AltText   string `json:"altText"`
	ProductID uint   `json:"productId" gorm:"index"`
}

type Product struct {
	gorm.Model
	Name        string          `json:"name" gorm:"size:255;not null;index"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock       int             `json:"stock" gorm:"not null;default:0"`
	CategoryID  uint            `json:"categoryId" gorm:"index"`
	Category    Category        `json:"category"`
	Attributes  datatypes.JSON  `json:"attributes"`
	Images      []ProductImage  `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

type ProductInput struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"required,gte=0"`
	Stock       *int             `json:"stock" binding:"omitempty,gte=0"`
	CategoryID  uint             `json:"categoryId" binding:"required"`
	Attributes  datatypes.JSON   `json:"attributes"`
	ImageUrls   []string         `json:"imageUrls"`
}

// ProductUpdate is a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"omitempty,gte=0"`
	Stock       *int             `json:"stock" binding:"omitempty,gte=0"`
	CategoryID  *uint            `json:"categoryId"`
	Attributes  datatypes.JSON   `json:"attributes"`
	ImageUrls   []string         `json:"imageUrls"`
}

// ProductFilter narrows a product listing. Min/Max are inclusive, Above/Below exclusive.
type ProductFilter struct {
	Name       string
	Price      *decimal.Decimal
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Above      *decimal.Decimal
	Below      *decimal.Decimal
	CategoryID *uint
}

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parentId"`
}
