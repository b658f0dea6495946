package routes

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Kariqs/shopcart-api/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, userID uint) models.Order {
	t.Helper()
	order := models.Order{
		UserID:      userID,
		TotalAmount: decimal.RequireFromString("30"),
		Status:      models.OrderStatusPending,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func TestOrderHistoryIsOwnerScoped(t *testing.T) {
	router, db := setupTestRouter(t)
	owner := createUser(t, db, "owner@example.com", false)
	other := createUser(t, db, "other@example.com", false)
	order := seedOrder(t, db, owner.ID)
	seedOrder(t, db, other.ID)

	w := performRequest(t, router, http.MethodGet, "/orders/", tokenFor(t, owner), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Orders []models.Order `json:"orders"`
	}
	decode(t, w, &list)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, order.ID, list.Orders[0].ID)

	path := fmt.Sprintf("/orders/%d/", order.ID)
	w = performRequest(t, router, http.MethodGet, path, tokenFor(t, owner), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, router, http.MethodGet, path, tokenFor(t, other), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminOrderManagement(t *testing.T) {
	router, db := setupTestRouter(t)
	admin := createUser(t, db, "admin@example.com", true)
	shopper := createUser(t, db, "shopper@example.com", false)
	order := seedOrder(t, db, shopper.ID)
	seedOrder(t, db, shopper.ID)
	seedOrder(t, db, shopper.ID)

	w := performRequest(t, router, http.MethodGet, "/orders/all/", tokenFor(t, shopper), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(t, router, http.MethodGet, "/orders/all/?page=1&limit=2", tokenFor(t, admin), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var page struct {
		Orders   []models.Order `json:"orders"`
		Metadata struct {
			Total       int  `json:"total"`
			HasNextPage bool `json:"hasNextPage"`
		} `json:"metadata"`
	}
	decode(t, w, &page)
	assert.Len(t, page.Orders, 2)
	assert.Equal(t, 3, page.Metadata.Total)
	assert.True(t, page.Metadata.HasNextPage)

	statusPath := fmt.Sprintf("/orders/%d/status/", order.ID)
	w = performRequest(t, router, http.MethodPatch, statusPath, tokenFor(t, shopper), gin.H{"status": "shipped"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(t, router, http.MethodPatch, statusPath, tokenFor(t, admin), gin.H{"status": "shipped"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = performRequest(t, router, http.MethodPatch, statusPath, tokenFor(t, admin), gin.H{"status": "lost"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(t, router, http.MethodGet, "/orders/all/?status=shipped", tokenFor(t, admin), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &page)
	require.Len(t, page.Orders, 1)
	assert.Equal(t, order.ID, page.Orders[0].ID)
}
