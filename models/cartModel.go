package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart rows are never soft deleted: the unique index on user_id must stay usable.
type Cart struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"userId" gorm:"uniqueIndex;not null"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CartID    uint      `json:"cartId" gorm:"not null;uniqueIndex:idx_cart_product"`
	ProductID uint      `json:"-" gorm:"not null;uniqueIndex:idx_cart_product"`
	Product   Product   `json:"product"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Subtotal is price times quantity at the product's current price.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type CartRequestItem struct {
	ProductID *uint `json:"productId" binding:"required"`
	Quantity  *int  `json:"quantity" binding:"omitempty,min=1"`
}

type AddToCartRequest struct {
	Products []CartRequestItem `json:"products" binding:"required,min=1,dive"`
}

type CartItemUpdate struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
