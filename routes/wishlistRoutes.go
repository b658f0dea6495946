package routes

import (
	"github.com/Kariqs/shopcart-api/controllers"
	"github.com/Kariqs/shopcart-api/middlewares"
	"github.com/gin-gonic/gin"
)

func WishlistRoutes(server *gin.Engine) {
	wishlist := server.Group("/wishlist", middlewares.RequireAuth())
	{
		wishlist.GET("/", controllers.GetWishlist)
		wishlist.POST("/", controllers.AddToWishlist)
		wishlist.DELETE("/:id/", controllers.RemoveFromWishlist)
	}
}
