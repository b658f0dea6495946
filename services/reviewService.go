package services

import (
	"fmt"
	"strings"

	"github.com/Kariqs/shopcart-api/models"
	"gorm.io/gorm"
)

func ListReviews(db *gorm.DB, productID uint) ([]models.Review, error) {
	if _, err := GetProduct(db, productID); err != nil {
		return nil, err
	}

	reviews := []models.Review{}
	if err := db.Where("product_id = ?", productID).Order("id desc").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func CreateReview(db *gorm.DB, userID, productID uint, input models.ReviewInput) (models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return models.Review{}, fmt.Errorf("rating must be between 1 and 5: %w", ErrValidation)
	}
	if _, err := GetProduct(db, productID); err != nil {
		return models.Review{}, err
	}

	review := models.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
	}
	if err := db.Create(&review).Error; err != nil {
		return models.Review{}, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}
