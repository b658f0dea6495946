package services

import (
	"errors"
	"fmt"

	"github.com/Kariqs/shopcart-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func ListWishlist(db *gorm.DB, userID uint) ([]models.WishlistItem, error) {
	items := []models.WishlistItem{}
	if err := db.Preload("Product").Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return items, nil
}

// AddToWishlist saves a product for the user. created is false when the product
// was already on the list.
func AddToWishlist(db *gorm.DB, userID, productID uint) (item models.WishlistItem, created bool, err error) {
	var product models.Product
	if err := db.Select("id").First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.WishlistItem{}, false, fmt.Errorf("product %d does not exist: %w", productID, ErrValidation)
		}
		return models.WishlistItem{}, false, err
	}

	row := models.WishlistItem{UserID: userID, ProductID: productID}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(&row)
	if result.Error != nil {
		return models.WishlistItem{}, false, fmt.Errorf("add to wishlist: %w", result.Error)
	}

	if err := db.Preload("Product").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		return models.WishlistItem{}, false, fmt.Errorf("load wishlist item: %w", err)
	}
	return item, result.RowsAffected > 0, nil
}

func RemoveFromWishlist(db *gorm.DB, userID, itemID uint) error {
	result := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.WishlistItem{})
	if result.Error != nil {
		return fmt.Errorf("remove wishlist item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("wishlist item: %w", ErrNotFound)
	}
	return nil
}
