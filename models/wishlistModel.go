package models

import "time"

type WishlistItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
	ProductID uint      `json:"-" gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
	Product   Product   `json:"product"`
	CreatedAt time.Time `json:"createdAt"`
}

type WishlistInput struct {
	ProductID uint `json:"productId" binding:"required"`
}
