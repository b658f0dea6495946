package services

import (
	"fmt"
	"strings"

	"github.com/Kariqs/shopcart-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func GetProduct(db *gorm.DB, id uint) (models.Product, error) {
	var product models.Product
	if err := db.Preload("Category").Preload("Images").First(&product, id).Error; err != nil {
		return models.Product{}, notFound(err, "product")
	}
	return product, nil
}

func ListProducts(db *gorm.DB, filter models.ProductFilter) ([]models.Product, error) {
	query := db.Preload("Category").Preload("Images").Order("id")

	if name := strings.TrimSpace(filter.Name); name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if filter.Price != nil {
		query = query.Where("price = ?", *filter.Price)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Above != nil {
		query = query.Where("price > ?", *filter.Above)
	}
	if filter.Below != nil {
		query = query.Where("price < ?", *filter.Below)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	products := []models.Product{}
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func ensureCategoryExists(db *gorm.DB, id uint) error {
	var count int64
	if err := db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("category %d does not exist: %w", id, ErrValidation)
	}
	return nil
}

// ensureNameAvailable rejects a product name already used by another live product.
func ensureNameAvailable(db *gorm.DB, name string, exceptID uint) error {
	var count int64
	query := db.Model(&models.Product{}).Where("LOWER(name) = ?", strings.ToLower(name))
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("product named %q already exists: %w", name, ErrConflict)
	}
	return nil
}

// checkPrice rejects negative prices and prices finer than the column's two decimal places.
func checkPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("price must be zero or greater: %w", ErrValidation)
	}
	if !price.Equal(price.Round(2)) {
		return fmt.Errorf("price %s has more than two decimal places: %w", price, ErrValidation)
	}
	return nil
}

func imagesFromUrls(urls []string) []models.ProductImage {
	images := make([]models.ProductImage, 0, len(urls))
	for _, url := range urls {
		if url = strings.TrimSpace(url); url != "" {
			images = append(images, models.ProductImage{Url: url})
		}
	}
	return images
}

func CreateProduct(db *gorm.DB, input models.ProductInput) (models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Product{}, fmt.Errorf("name is required: %w", ErrValidation)
	}
	if input.Price == nil {
		return models.Product{}, fmt.Errorf("price is required: %w", ErrValidation)
	}
	if err := checkPrice(*input.Price); err != nil {
		return models.Product{}, err
	}
	stock := 0
	if input.Stock != nil {
		stock = *input.Stock
	}
	if stock < 0 {
		return models.Product{}, fmt.Errorf("stock must be zero or greater: %w", ErrValidation)
	}

	product := models.Product{
		Name:        name,
		Description: input.Description,
		Price:       *input.Price,
		Stock:       stock,
		CategoryID:  input.CategoryID,
		Attributes:  input.Attributes,
		Images:      imagesFromUrls(input.ImageUrls),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := ensureCategoryExists(tx, input.CategoryID); err != nil {
			return err
		}
		if err := ensureNameAvailable(tx, name, 0); err != nil {
			return err
		}
		return tx.Omit("Category").Create(&product).Error
	})
	if err != nil {
		return models.Product{}, err
	}

	return GetProduct(db, product.ID)
}

func UpdateProduct(db *gorm.DB, id uint, input models.ProductUpdate) (models.Product, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			return notFound(err, "product")
		}

		updates := map[string]any{}
		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return fmt.Errorf("name cannot be blank: %w", ErrValidation)
			}
			if err := ensureNameAvailable(tx, name, product.ID); err != nil {
				return err
			}
			updates["name"] = name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Price != nil {
			if err := checkPrice(*input.Price); err != nil {
				return err
			}
			updates["price"] = *input.Price
		}
		if input.Stock != nil {
			if *input.Stock < 0 {
				return fmt.Errorf("stock must be zero or greater: %w", ErrValidation)
			}
			updates["stock"] = *input.Stock
		}
		if input.CategoryID != nil {
			if err := ensureCategoryExists(tx, *input.CategoryID); err != nil {
				return err
			}
			updates["category_id"] = *input.CategoryID
		}
		if input.Attributes != nil {
			updates["attributes"] = input.Attributes
		}

		if len(updates) > 0 {
			if err := tx.Model(&product).Updates(updates).Error; err != nil {
				return err
			}
		}

		if images := imagesFromUrls(input.ImageUrls); len(images) > 0 {
			for i := range images {
				images[i].ProductID = product.ID
			}
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}

	return GetProduct(db, id)
}

// DeleteProduct removes a product together with the cart lines and wishlist
// entries that point at it.
func DeleteProduct(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			return notFound(err, "product")
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.WishlistItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
}

// AddProductImage records an already stored image against a product.
func AddProductImage(db *gorm.DB, productID uint, url, altText string) (models.ProductImage, error) {
	if _, err := GetProduct(db, productID); err != nil {
		return models.ProductImage{}, err
	}
	image := models.ProductImage{Url: url, AltText: altText, ProductID: productID}
	if err := db.Create(&image).Error; err != nil {
		return models.ProductImage{}, fmt.Errorf("save product image: %w", err)
	}
	return image, nil
}
