package routes

import (
	"github.com/Kariqs/shopcart-api/controllers"
	"github.com/Kariqs/shopcart-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.GET("/", controllers.GetCart)
		cart.POST("/", controllers.AddToCart)
		cart.DELETE("/", controllers.ClearCart)
		cart.PUT("/:itemId/", controllers.UpdateCartItem)
		cart.DELETE("/:itemId/", controllers.RemoveCartItem)
	}
}
