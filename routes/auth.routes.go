package routes

import (
	"foodgram/internal/authz"
	"foodgram/internal/controllers"
	"foodgram/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(api *gin.RouterGroup, authController *controllers.AuthController, authn *middleware.Authenticator, enforcer *authz.Enforcer) {
	authRoutes := api.Group("/auth/token")
	{
		authRoutes.POST("/login/", middleware.RequirePermission(enforcer, authz.ObjAuth, authz.ActLogin), authController.Login)
		authRoutes.POST("/logout/", authn.AuthMiddleware(), middleware.RequirePermission(enforcer, authz.ObjAuth, authz.ActLogout), authController.Logout)
	}
}
