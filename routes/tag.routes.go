package routes

import (
	"foodgram/internal/authz"
	"foodgram/internal/controllers"
	"foodgram/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterTagRoutes(api *gin.RouterGroup, tagController *controllers.TagController, enforcer *authz.Enforcer) {
	read := middleware.RequirePermission(enforcer, authz.ObjTag, authz.ActRead)

	tagRoutes := api.Group("/tags")
	{
		tagRoutes.GET("/", read, tagController.ListTags)
		tagRoutes.GET("/:id/", read, tagController.GetTagByID)
		tagRoutes.POST("/", middleware.RequirePermission(enforcer, authz.ObjTag, authz.ActCreate), tagController.CreateTag)
		tagRoutes.DELETE("/:id/", middleware.RequirePermission(enforcer, authz.ObjTag, authz.ActDelete), tagController.DeleteTag)
	}
}
