package routes

import (
	"github.com/Kariqs/shopcart-api/controllers"
	"github.com/Kariqs/shopcart-api/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/orders", middlewares.RequireAuth())
	{
		orders.GET("/", controllers.GetMyOrders)
		orders.GET("/all/", middlewares.RequireAdmin(), controllers.GetAllOrders)
		orders.GET("/:id/", controllers.GetOrderById)
		orders.PATCH("/:id/status/", middlewares.RequireAdmin(), controllers.UpdateOrderStatus)
	}
}
