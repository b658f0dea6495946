package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Kariqs/shopcart-api/initializers"
	"github.com/Kariqs/shopcart-api/services"
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidInput        = "Invalid input"
	msgInternalServerError = "Internal server error"
	msgInvalidCredentials  = "Invalid credentials"
	msgNotAuthenticated    = "Authentication credentials were not provided"
)

func sendJSONResponse(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// respondWithError includes the underlying error text for client-side debugging.
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// handleServiceError maps a service error onto a status code. Unknown errors are
// logged and reported as fallback with a 500.
func handleServiceError(ctx *gin.Context, err error, fallback string) {
	var missingProduct *services.ProductNotFoundError
	switch {
	case errors.As(err, &missingProduct):
		respondWithError(ctx, http.StatusBadRequest, "Product not found", err)
	case errors.Is(err, services.ErrNotFound):
		respondWithError(ctx, http.StatusNotFound, "Not found", err)
	case errors.Is(err, services.ErrValidation):
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
	case errors.Is(err, services.ErrInvalidCredentials):
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
	case errors.Is(err, services.ErrForbidden):
		respondWithError(ctx, http.StatusForbidden, "Forbidden", err)
	case errors.Is(err, services.ErrConflict):
		respondWithError(ctx, http.StatusConflict, "Conflict", err)
	default:
		log.Println(fallback+":", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, fallback)
	}
}

// currentUserID returns the id RequireAuth stored on the context.
func currentUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get("userID")
	if !exists {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgNotAuthenticated)
		return 0, false
	}
	userID, ok := value.(uint)
	if !ok || userID == 0 {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgNotAuthenticated)
		return 0, false
	}
	return userID, true
}

func parseIDParam(ctx *gin.Context, name, label string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondWithError(ctx, http.StatusBadRequest, "Invalid "+label, err)
		return 0, false
	}
	return uint(id), true
}

func tokenSettings() services.TokenSettings {
	return services.TokenSettings{
		Secret:     initializers.Config.JWTSecret,
		AccessTTL:  initializers.Config.AccessTokenTTL,
		RefreshTTL: initializers.Config.RefreshTokenTTL,
	}
}
