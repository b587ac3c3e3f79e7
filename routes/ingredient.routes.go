package routes

import (
	"foodgram/internal/authz"
	"foodgram/internal/controllers"
	"foodgram/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterIngredientRoutes(api *gin.RouterGroup, ingredientController *controllers.IngredientController, enforcer *authz.Enforcer) {
	read := middleware.RequirePermission(enforcer, authz.ObjIngredient, authz.ActRead)

	ingredientRoutes := api.Group("/ingredients")
	{
		ingredientRoutes.GET("/", read, ingredientController.ListIngredients)
		ingredientRoutes.GET("/:id/", read, ingredientController.GetIngredientByID)
		ingredientRoutes.POST("/", middleware.RequirePermission(enforcer, authz.ObjIngredient, authz.ActCreate), ingredientController.CreateIngredient)
		ingredientRoutes.DELETE("/:id/", middleware.RequirePermission(enforcer, authz.ObjIngredient, authz.ActDelete), ingredientController.DeleteIngredient)
	}
}
