package routes

import (
	"github.com/Kariqs/shopcart-api/controllers"
	"github.com/Kariqs/shopcart-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/products/", controllers.GetProducts)
	server.GET("/products/:id/", controllers.GetProduct)
	server.GET("/products/:id/reviews/", controllers.GetProductReviews)
	server.POST("/products/:id/reviews/", middlewares.RequireAuth(), controllers.CreateProductReview)

	admin := server.Group("/products", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/", controllers.CreateProduct)
		admin.PUT("/:id/", controllers.UpdateProduct)
		admin.DELETE("/:id/", controllers.DeleteProduct)
		admin.POST("/:id/images/", controllers.UploadProductImages)
	}
}
