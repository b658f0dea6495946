package routes

import (
	"github.com/Kariqs/shopcart-api/controllers"
	"github.com/Kariqs/shopcart-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CategoryRoutes(server *gin.Engine) {
	server.GET("/categories/", controllers.GetCategories)

	admin := server.Group("/categories", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/", controllers.CreateCategory)
		admin.PUT("/:id/", controllers.UpdateCategory)
		admin.DELETE("/:id/", controllers.DeleteCategory)
	}
}
