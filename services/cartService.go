package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Kariqs/shopcart-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartLine is one requested (product, quantity) pair of an add-to-cart batch.
type CartLine struct {
	ProductID uint
	Quantity  int
}

// CartView is a cart with its line items and totals.
type CartView struct {
	Cart       models.Cart
	Items      []models.CartItem
	TotalItems int
	TotalPrice decimal.Decimal
}

func (v CartView) Empty() bool {
	return len(v.Items) == 0
}

// EnsureCart returns the user's cart, creating it on first use. The unique index on
// carts.user_id makes concurrent first calls converge on a single row.
func EnsureCart(db *gorm.DB, userID uint) (models.Cart, error) {
	candidate := models.Cart{UserID: userID}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&candidate).Error; err != nil {
		return models.Cart{}, fmt.Errorf("create cart: %w", err)
	}

	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return models.Cart{}, fmt.Errorf("load cart: %w", err)
	}
	return cart, nil
}

// AddToCart merges each requested line into the user's cart in input order.
// A line for a product already in the cart adds to its quantity. Every line is
// committed on its own, so lines before a failing one stay persisted.
func AddToCart(db *gorm.DB, userID uint, lines []CartLine) ([]models.CartItem, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("products must be a non-empty list: %w", ErrValidation)
	}

	cart, err := EnsureCart(db, userID)
	if err != nil {
		return nil, err
	}

	affected := make([]models.CartItem, 0, len(lines))
	for i, line := range lines {
		quantity := line.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 0 {
			return affected, fmt.Errorf("products[%d]: quantity must be positive: %w", i, ErrValidation)
		}

		var item models.CartItem
		err := db.Transaction(func(tx *gorm.DB) error {
			var product models.Product
			if err := tx.Select("id").First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ProductNotFoundError{Index: i, ProductID: line.ProductID}
				}
				return err
			}

			row := models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: quantity}
			if err := tx.Omit("Product").Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"quantity":   gorm.Expr("cart_items.quantity + ?", quantity),
					"updated_at": time.Now(),
				}),
			}).Create(&row).Error; err != nil {
				return err
			}

			return tx.Preload("Product").
				Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).
				First(&item).Error
		})
		if err != nil {
			return affected, err
		}
		affected = append(affected, item)
	}

	return affected, nil
}

// GetCart returns the user's cart and line items, creating an empty cart if needed.
func GetCart(db *gorm.DB, userID uint) (CartView, error) {
	cart, err := EnsureCart(db, userID)
	if err != nil {
		return CartView{}, err
	}

	var items []models.CartItem
	if err := db.Preload("Product").
		Where("cart_id = ?", cart.ID).
		Order("id").
		Find(&items).Error; err != nil {
		return CartView{}, fmt.Errorf("load cart items: %w", err)
	}

	view := CartView{Cart: cart, Items: items, TotalPrice: decimal.Zero}
	for _, item := range items {
		view.TotalItems += item.Quantity
		view.TotalPrice = view.TotalPrice.Add(item.Subtotal())
	}
	return view, nil
}

// findOwnedCartItem looks an item up through its cart's owner, so another user's
// item is indistinguishable from a missing one.
func findOwnedCartItem(db *gorm.DB, userID, itemID uint) (models.CartItem, error) {
	var item models.CartItem
	err := db.Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		Preload("Product").
		First(&item).Error
	if err != nil {
		return models.CartItem{}, notFound(err, "cart item")
	}
	return item, nil
}

// UpdateCartItem overwrites the quantity of one of the user's cart items.
func UpdateCartItem(db *gorm.DB, userID, itemID uint, quantity int) (models.CartItem, error) {
	if quantity < 1 {
		return models.CartItem{}, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	item, err := findOwnedCartItem(db, userID, itemID)
	if err != nil {
		return models.CartItem{}, err
	}

	if err := db.Model(&models.CartItem{}).
		Where("id = ?", item.ID).
		Update("quantity", quantity).Error; err != nil {
		return models.CartItem{}, fmt.Errorf("update cart item: %w", err)
	}
	item.Quantity = quantity
	return item, nil
}

// RemoveCartItem deletes one of the user's cart items.
func RemoveCartItem(db *gorm.DB, userID, itemID uint) error {
	item, err := findOwnedCartItem(db, userID, itemID)
	if err != nil {
		return err
	}
	if err := db.Delete(&models.CartItem{}, item.ID).Error; err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// ClearCart removes every line from the user's cart.
func ClearCart(db *gorm.DB, userID uint) error {
	cart, err := EnsureCart(db, userID)
	if err != nil {
		return err
	}
	return db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
}
