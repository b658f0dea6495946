package routes

import (
	"github.com/Kariqs/shopcart-api/controllers"
	"github.com/Kariqs/shopcart-api/initializers"
	"github.com/Kariqs/shopcart-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine) {
	throttle := middlewares.LoginRateLimit(
		initializers.Redis,
		initializers.Config.LoginMaxAttempts,
		initializers.Config.LoginCooldown,
	)

	users := server.Group("/users")
	{
		users.POST("/admin/new/", controllers.RegisterAdmin)
		users.POST("/admin/login/", throttle, controllers.AdminLogin)
		users.POST("/register/", controllers.Register)
		users.POST("/login/", throttle, controllers.Login)
		users.POST("/token/refresh/", controllers.RefreshToken)
		users.GET("/me/", middlewares.RequireAuth(), controllers.GetProfile)
		users.PUT("/me/", middlewares.RequireAuth(), controllers.UpdateProfile)
		users.POST("/me/photo/", middlewares.RequireAuth(), controllers.UploadProfilePhoto)
	}
}
