package controllers

import (
	"net/http"

	"github.com/Kariqs/shopcart-api/initializers"
	"github.com/Kariqs/shopcart-api/models"
	"github.com/Kariqs/shopcart-api/services"
	"github.com/gin-gonic/gin"
)

func GetWishlist(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	items, err := services.ListWishlist(initializers.DB, userID)
	if err != nil {
		handleServiceError(ctx, err, "Unable to fetch wishlist")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, items)
}

func AddToWishlist(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var input models.WishlistInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	item, created, err := services.AddToWishlist(initializers.DB, userID, input.ProductID)
	if err != nil {
		handleServiceError(ctx, err, "Unable to update wishlist")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	sendJSONResponse(ctx, status, item)
}

func RemoveFromWishlist(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(ctx, "id", "wishlist item ID")
	if !ok {
		return
	}

	if err := services.RemoveFromWishlist(initializers.DB, userID, itemID); err != nil {
		handleServiceError(ctx, err, "Unable to remove wishlist item")
		return
	}

	ctx.Status(http.StatusNoContent)
}
