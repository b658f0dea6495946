package routes

import (
	"time"

	"github.com/Kariqs/shopcart-api/initializers"
	"github.com/Kariqs/shopcart-api/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the engine from the package-level initializers state.
func SetupRouter() *gin.Engine {
	utils.RegisterValidators()

	origins := initializers.Config.CORSOrigins
	if len(origins) == 0 {
		origins = initializers.DefaultSettings().CORSOrigins
	}

	server := gin.New()
	server.Use(gin.Logger(), gin.Recovery())
	server.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	DefaultRoutes(server)
	AuthRoutes(server)
	CategoryRoutes(server)
	ProductRoutes(server)
	CartRoutes(server)
	OrderRoutes(server)
	WishlistRoutes(server)
	return server
}
