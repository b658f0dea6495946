package controllers

import (
	"net/http"

	"github.com/Kariqs/shopcart-api/initializers"
	"github.com/Kariqs/shopcart-api/models"
	"github.com/Kariqs/shopcart-api/services"
	"github.com/gin-gonic/gin"
)

func GetCategories(ctx *gin.Context) {
	categories, err := services.ListCategories(initializers.DB, ctx.Query("keyword"))
	if err != nil {
		handleServiceError(ctx, err, "Unable to fetch categories")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, categories)
}

func CreateCategory(ctx *gin.Context) {
	var input models.CategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	category, err := services.CreateCategory(initializers.DB, input)
	if err != nil {
		handleServiceError(ctx, err, "Failed to create category")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, category)
}

func UpdateCategory(ctx *gin.Context) {
	categoryID, ok := parseIDParam(ctx, "id", "category ID")
	if !ok {
		return
	}

	var input models.CategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	category, err := services.UpdateCategory(initializers.DB, categoryID, input)
	if err != nil {
		handleServiceError(ctx, err, "Failed to update category")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, category)
}

func DeleteCategory(ctx *gin.Context) {
	categoryID, ok := parseIDParam(ctx, "id", "category ID")
	if !ok {
		return
	}

	if err := services.DeleteCategory(initializers.DB, categoryID); err != nil {
		handleServiceError(ctx, err, "Failed to delete category")
		return
	}

	ctx.Status(http.StatusNoContent)
}
