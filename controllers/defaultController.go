package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/Kariqs/shopcart-api/initializers"
	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Shop Cart API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

USERS
- POST "/users/admin/new/" - Create admin account
- POST "/users/admin/login/" - Admin login
- POST "/users/register/" - Create customer account
- POST "/users/login/" - Customer login
- POST "/users/token/refresh/" - Exchange a refresh token for an access token
- GET|PUT "/users/me/" - View or update your profile
- POST "/users/me/photo/" - Upload a profile photo

CATALOG
- GET "/categories/" - List categories (filter: keyword)
- POST "/categories/" - Create category (admin)
- PUT|DELETE "/categories/:id/" - Update or delete category (admin)
- GET "/products/" - List products (filters: name, price, min_price, max_price, price__gt, price__lt, category)
- POST "/products/" - Create product (admin)
- GET "/products/:id/" - Get product by ID
- PUT|DELETE "/products/:id/" - Update or delete product (admin)
- POST "/products/:id/images/" - Upload product images (admin)
- GET|POST "/products/:id/reviews/" - List or add reviews

CART
- GET "/cart/" - View your cart
- POST "/cart/" - Add products to your cart
- DELETE "/cart/" - Empty your cart
- PUT|DELETE "/cart/:itemId/" - Change quantity of or remove a cart item

ORDERS
- GET "/orders/" - Your orders
- GET "/orders/:id/" - One of your orders
- GET "/orders/all/" - All orders (admin)
- PATCH "/orders/:id/status/" - Update order status (admin)

WISHLIST
- GET|POST "/wishlist/" - View or add to your wishlist
- DELETE "/wishlist/:id/" - Remove a wishlist item`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

func Health(ctx *gin.Context) {
	sqlDB, err := initializers.DB.DB()
	if err != nil {
		respondWithError(ctx, http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}

	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		respondWithError(ctx, http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
