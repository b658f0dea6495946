package controllers

import (
	"net/http"

	"github.com/Kariqs/shopcart-api/initializers"
	"github.com/Kariqs/shopcart-api/models"
	"github.com/Kariqs/shopcart-api/services"
	"github.com/gin-gonic/gin"
)

func GetProductReviews(ctx *gin.Context) {
	productID, ok := parseIDParam(ctx, "id", "product ID")
	if !ok {
		return
	}

	reviews, err := services.ListReviews(initializers.DB, productID)
	if err != nil {
		handleServiceError(ctx, err, "Unable to fetch reviews")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, reviews)
}

func CreateProductReview(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	productID, ok := parseIDParam(ctx, "id", "product ID")
	if !ok {
		return
	}

	var input models.ReviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	review, err := services.CreateReview(initializers.DB, userID, productID, input)
	if err != nil {
		handleServiceError(ctx, err, "Failed to create review")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, review)
}
