package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/Kariqs/shopcart-api/initializers"
	"github.com/Kariqs/shopcart-api/models"
	"github.com/Kariqs/shopcart-api/services"
	"github.com/Kariqs/shopcart-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func decimalQuery(ctx *gin.Context, key string) (*decimal.Decimal, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &value, nil
}

func parseProductFilter(ctx *gin.Context) (models.ProductFilter, error) {
	filter := models.ProductFilter{Name: ctx.Query("name")}

	prices := []struct {
		key    string
		target **decimal.Decimal
	}{
		{"price", &filter.Price},
		{"min_price", &filter.MinPrice},
		{"max_price", &filter.MaxPrice},
		{"price__gt", &filter.Above},
		{"price__lt", &filter.Below},
	}
	for _, p := range prices {
		value, err := decimalQuery(ctx, p.key)
		if err != nil {
			return filter, err
		}
		*p.target = value
	}

	if raw := ctx.Query("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("category: %w", err)
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}
	return filter, nil
}

func GetProducts(ctx *gin.Context) {
	filter, err := parseProductFilter(ctx)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid filter", err)
		return
	}

	products, err := services.ListProducts(initializers.DB, filter)
	if err != nil {
		handleServiceError(ctx, err, "Unable to fetch products")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, products)
}

func GetProduct(ctx *gin.Context) {
	productID, ok := parseIDParam(ctx, "id", "product ID")
	if !ok {
		return
	}

	product, err := services.GetProduct(initializers.DB, productID)
	if err != nil {
		handleServiceError(ctx, err, "Unable to retrieve product")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, product)
}

func CreateProduct(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := services.CreateProduct(initializers.DB, input)
	if err != nil {
		handleServiceError(ctx, err, "Failed to create product")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, product)
}

func UpdateProduct(ctx *gin.Context) {
	productID, ok := parseIDParam(ctx, "id", "product ID")
	if !ok {
		return
	}

	var input models.ProductUpdate
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := services.UpdateProduct(initializers.DB, productID, input)
	if err != nil {
		handleServiceError(ctx, err, "Failed to update product")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, product)
}

func DeleteProduct(ctx *gin.Context) {
	productID, ok := parseIDParam(ctx, "id", "product ID")
	if !ok {
		return
	}

	if err := services.DeleteProduct(initializers.DB, productID); err != nil {
		handleServiceError(ctx, err, "Failed to delete product")
		return
	}

	ctx.Status(http.StatusNoContent)
}

// UploadProductImages stores each uploaded "images" file and records it against
// the product. Files that fail are reported back without failing the request.
func UploadProductImages(ctx *gin.Context) {
	productID, ok := parseIDParam(ctx, "id", "product ID")
	if !ok {
		return
	}

	if initializers.Images == nil {
		sendErrorResponse(ctx, http.StatusServiceUnavailable, "Image storage is not configured")
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
		return
	}

	if _, err := services.GetProduct(initializers.DB, productID); err != nil {
		handleServiceError(ctx, err, "Failed to validate product")
		return
	}

	altText := ctx.PostForm("altText")
	uploaded := []models.ProductImage{}
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		url, uploadErr := initializers.Images.Upload(
			ctx.Request.Context(),
			utils.ProductImageKey(productID, file.Filename),
			f,
			file.Header.Get("Content-Type"),
		)
		f.Close()

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		image, err := services.AddProductImage(initializers.DB, productID, url, altText)
		if err != nil {
			log.Printf("Error saving image %s to database: %v", url, err)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}
		uploaded = append(uploaded, image)
	}

	response := gin.H{
		"message": "Files processed",
		"images":  uploaded,
	}
	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	status := http.StatusCreated
	if len(uploaded) == 0 {
		status = http.StatusBadGateway
	}
	sendJSONResponse(ctx, status, response)
}
