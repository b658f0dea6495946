package routes

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Kariqs/shopcart-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlist(t *testing.T) {
	router, db := setupTestRouter(t)
	admin := createUser(t, db, "admin@example.com", true)
	shopper := createUser(t, db, "shopper@example.com", false)
	other := createUser(t, db, "other@example.com", false)
	product := createTestProduct(t, router, tokenFor(t, admin), "Kettle", 10)
	token := tokenFor(t, shopper)

	w := performRequest(t, router, http.MethodPost, "/wishlist/", token, gin.H{"productId": product.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var item models.WishlistItem
	decode(t, w, &item)

	w = performRequest(t, router, http.MethodPost, "/wishlist/", token, gin.H{"productId": product.ID})
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, router, http.MethodGet, "/wishlist/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.WishlistItem
	decode(t, w, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "Kettle", items[0].Product.Name)

	path := fmt.Sprintf("/wishlist/%d/", item.ID)
	w = performRequest(t, router, http.MethodDelete, path, tokenFor(t, other), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(t, router, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
