package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/Kariqs/shopcart-api/initializers"
	"github.com/Kariqs/shopcart-api/models"
	"github.com/Kariqs/shopcart-api/services"
	"github.com/gin-gonic/gin"
)

func GetMyOrders(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	orders, err := services.ListOrders(initializers.DB, userID)
	if err != nil {
		handleServiceError(ctx, err, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

func GetOrderById(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	orderID, ok := parseIDParam(ctx, "id", "order ID")
	if !ok {
		return
	}

	order, err := services.GetOrder(initializers.DB, userID, orderID)
	if err != nil {
		handleServiceError(ctx, err, "Failed to fetch order.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// GetAllOrders lists every order for staff, paginated
func GetAllOrders(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid page", err)
		return
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid limit", err)
		return
	}

	status := models.OrderStatus(ctx.Query("status"))
	orders, count, err := services.ListAllOrders(initializers.DB, status, services.Page{Page: page, Limit: limit})
	if err != nil {
		handleServiceError(ctx, err, "Unable to fetch orders")
		return
	}

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Failed to parse request body", err)
		return
	}

	orderID, ok := parseIDParam(ctx, "id", "order ID")
	if !ok {
		return
	}

	order, err := services.UpdateOrderStatus(initializers.DB, orderID, models.OrderStatus(orderStatusData.Status))
	if err != nil {
		handleServiceError(ctx, err, "Failed to update order status")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order status updated successfully.",
		"order":   order,
	})
}
