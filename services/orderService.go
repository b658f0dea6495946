package services

import (
	"fmt"

	"github.com/Kariqs/shopcart-api/models"
	"gorm.io/gorm"
)

func preloadOrder(db *gorm.DB) *gorm.DB {
	return db.Preload("OrderItems").Preload("OrderItems.Product")
}

// ListOrders returns the user's orders, newest first.
func ListOrders(db *gorm.DB, userID uint) ([]models.Order, error) {
	orders := []models.Order{}
	if err := preloadOrder(db).Where("user_id = ?", userID).Order("id desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Page selects a window of a listing; Page is 1-based.
type Page struct {
	Page  int
	Limit int
}

func (p Page) offset() int {
	return (p.Page - 1) * p.Limit
}

// ListAllOrders returns one page of every user's orders, optionally narrowed to
// one status, together with the total number of matching orders.
func ListAllOrders(db *gorm.DB, status models.OrderStatus, page Page) ([]models.Order, int64, error) {
	if page.Page < 1 || page.Limit < 1 {
		return nil, 0, fmt.Errorf("page and limit must be positive: %w", ErrValidation)
	}

	filtered := db.Model(&models.Order{})
	if status != "" {
		if !status.Valid() {
			return nil, 0, fmt.Errorf("unknown order status %q: %w", status, ErrValidation)
		}
		filtered = filtered.Where("status = ?", status)
	}

	var count int64
	if err := filtered.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	orders := []models.Order{}
	if err := preloadOrder(filtered.Session(&gorm.Session{})).
		Order("id desc").
		Limit(page.Limit).
		Offset(page.offset()).
		Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	return orders, count, nil
}

// GetOrder returns one of the user's orders. Orders of other users are reported as missing.
func GetOrder(db *gorm.DB, userID, orderID uint) (models.Order, error) {
	var order models.Order
	if err := preloadOrder(db).Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
		return models.Order{}, notFound(err, "order")
	}
	return order, nil
}

// UpdateOrderStatus sets an order's status. Any transition between known statuses is allowed.
func UpdateOrderStatus(db *gorm.DB, orderID uint, status models.OrderStatus) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, fmt.Errorf("unknown order status %q: %w", status, ErrValidation)
	}

	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		return models.Order{}, notFound(err, "order")
	}
	if err := db.Model(&order).Update("status", status).Error; err != nil {
		return models.Order{}, fmt.Errorf("update order status: %w", err)
	}

	if err := preloadOrder(db).First(&order, orderID).Error; err != nil {
		return models.Order{}, notFound(err, "order")
	}
	return order, nil
}
