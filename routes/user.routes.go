package routes

import (
	"foodgram/internal/authz"
	"foodgram/internal/controllers"
	"foodgram/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(api *gin.RouterGroup, userController *controllers.UserController, enforcer *authz.Enforcer) {
	read := middleware.RequirePermission(enforcer, authz.ObjUser, authz.ActRead)
	me := middleware.RequirePermission(enforcer, authz.ObjUser, authz.ActMe)
	subscribe := middleware.RequirePermission(enforcer, authz.ObjUser, authz.ActSubscribe)

	userRoutes := api.Group("/users")
	{
		userRoutes.GET("/", read, userController.ListUsers)
		userRoutes.POST("/", middleware.RequirePermission(enforcer, authz.ObjUser, authz.ActCreate), userController.CreateUser)
		userRoutes.GET("/me/", me, userController.Me)
		userRoutes.POST("/set_password/", me, userController.SetPassword)
		userRoutes.GET("/subscriptions/", subscribe, userController.Subscriptions)
		userRoutes.GET("/:id/", read, userController.GetUserByID)
		userRoutes.POST("/:id/subscribe/", subscribe, userController.Subscribe)
		userRoutes.DELETE("/:id/subscribe/", subscribe, userController.Unsubscribe)
	}
}
