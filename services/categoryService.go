package services

import (
	"fmt"
	"strings"

	"github.com/Kariqs/shopcart-api/models"
	"gorm.io/gorm"
)

// ListCategories lists categories, optionally those whose name contains keyword.
func ListCategories(db *gorm.DB, keyword string) ([]models.Category, error) {
	query := db.Order("id")
	if keyword = strings.TrimSpace(keyword); keyword != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(keyword)+"%")
	}

	categories := []models.Category{}
	if err := query.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func GetCategory(db *gorm.DB, id uint) (models.Category, error) {
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		return models.Category{}, notFound(err, "category")
	}
	return category, nil
}

// checkParent verifies that parentID exists and that attaching categoryID under it
// does not make categoryID its own ancestor. categoryID is 0 for a new category.
func checkParent(db *gorm.DB, categoryID, parentID uint) error {
	seen := map[uint]bool{}
	current := parentID
	for {
		if current == categoryID && categoryID != 0 {
			return fmt.Errorf("category %d cannot be its own ancestor: %w", categoryID, ErrValidation)
		}
		if seen[current] {
			return fmt.Errorf("category tree already contains a cycle at %d: %w", current, ErrValidation)
		}
		seen[current] = true

		var parent models.Category
		if err := db.Select("id", "parent_id").First(&parent, current).Error; err != nil {
			if IsMissing(err) {
				return fmt.Errorf("parent category %d does not exist: %w", current, ErrValidation)
			}
			return err
		}
		if parent.ParentID == nil {
			return nil
		}
		current = *parent.ParentID
	}
}

func CreateCategory(db *gorm.DB, input models.CategoryInput) (models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Category{}, fmt.Errorf("name is required: %w", ErrValidation)
	}

	category := models.Category{Name: name, Description: input.Description, ParentID: input.ParentID}
	err := db.Transaction(func(tx *gorm.DB) error {
		if input.ParentID != nil {
			if err := checkParent(tx, 0, *input.ParentID); err != nil {
				return err
			}
		}
		return tx.Create(&category).Error
	})
	if err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func UpdateCategory(db *gorm.DB, id uint, input models.CategoryInput) (models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Category{}, fmt.Errorf("name is required: %w", ErrValidation)
	}

	var category models.Category
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, id).Error; err != nil {
			return notFound(err, "category")
		}
		if input.ParentID != nil {
			if err := checkParent(tx, category.ID, *input.ParentID); err != nil {
				return err
			}
		}
		category.Name = name
		category.Description = input.Description
		category.ParentID = input.ParentID
		return tx.Select("name", "description", "parent_id", "updated_at").Save(&category).Error
	})
	if err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// DeleteCategory refuses to orphan products or child categories. Soft-deleted
// products still hold their foreign key, so they count too.
func DeleteCategory(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			return notFound(err, "category")
		}

		var products, children int64
		if err := tx.Unscoped().Model(&models.Product{}).Where("category_id = ?", id).Count(&products).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Category{}).Where("parent_id = ?", id).Count(&children).Error; err != nil {
			return err
		}
		if products > 0 || children > 0 {
			return fmt.Errorf("category %d still has %d products and %d subcategories: %w", id, products, children, ErrConflict)
		}
		return tx.Delete(&category).Error
	})
}
