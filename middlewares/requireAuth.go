package middlewares

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Kariqs/shopcart-api/initializers"
	"github.com/Kariqs/shopcart-api/models"
	"github.com/Kariqs/shopcart-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireAuth accepts a Bearer access token and stores its claims under "user"
// and the caller's id under "userID". The account is reloaded on every request so
// a deactivation or role change applies before the token expires.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication credentials were not provided"})
			return
		}

		scheme, tokenString, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header format"})
			return
		}

		claims, err := utils.ParseToken(tokenString, initializers.Config.JWTSecret, utils.AccessToken)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}
		subject, err := utils.SubjectFromClaims(claims)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		var user models.User
		if err := initializers.DB.Select("id", "is_staff", "is_active").First(&user, subject.UserID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("Database error:", err)
			}
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			return
		}
		if !user.IsActive {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "This account has been disabled"})
			return
		}
		claims["role"] = user.Role()

		ctx.Set("user", claims)
		ctx.Set("userID", subject.UserID)
		ctx.Next()
	}
}
