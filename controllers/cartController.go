package controllers

import (
	"net/http"

	"github.com/Kariqs/shopcart-api/initializers"
	"github.com/Kariqs/shopcart-api/models"
	"github.com/Kariqs/shopcart-api/services"
	"github.com/gin-gonic/gin"
)

const msgCartEmpty = "Your cart is empty"

// AddToCart merges a batch of products into the caller's cart
func AddToCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var request models.AddToCartRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	lines := make([]services.CartLine, 0, len(request.Products))
	for _, product := range request.Products {
		line := services.CartLine{ProductID: *product.ProductID}
		if product.Quantity != nil {
			line.Quantity = *product.Quantity
		}
		lines = append(lines, line)
	}

	items, err := services.AddToCart(initializers.DB, userID, lines)
	if err != nil {
		handleServiceError(ctx, err, "Unable to update cart")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"cart_items": items})
}

func GetCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	view, err := services.GetCart(initializers.DB, userID)
	if err != nil {
		handleServiceError(ctx, err, "Failed to fetch cart")
		return
	}

	if view.Empty() {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"id":         view.Cart.ID,
			"message":    msgCartEmpty,
			"cart_items": []models.CartItem{},
		})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"id":          view.Cart.ID,
		"cart_items":  view.Items,
		"total_items": view.TotalItems,
		"total_price": view.TotalPrice,
	})
}

func UpdateCartItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(ctx, "itemId", "cart item ID")
	if !ok {
		return
	}

	var update models.CartItemUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	item, err := services.UpdateCartItem(initializers.DB, userID, itemID, update.Quantity)
	if err != nil {
		handleServiceError(ctx, err, "Unable to update cart item quantity")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, item)
}

func RemoveCartItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(ctx, "itemId", "cart item ID")
	if !ok {
		return
	}

	if err := services.RemoveCartItem(initializers.DB, userID, itemID); err != nil {
		handleServiceError(ctx, err, "Unable to remove cart item")
		return
	}

	ctx.Status(http.StatusNoContent)
}

func ClearCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	if err := services.ClearCart(initializers.DB, userID); err != nil {
		handleServiceError(ctx, err, "Unable to clear cart")
		return
	}

	ctx.Status(http.StatusNoContent)
}
