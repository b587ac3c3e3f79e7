package routes

import (
	"foodgram/internal/authz"
	"foodgram/internal/controllers"
	"foodgram/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRecipeRoutes(api *gin.RouterGroup, recipeController *controllers.RecipeController, enforcer *authz.Enforcer) {
	read := middleware.RequirePermission(enforcer, authz.ObjRecipe, authz.ActRead)
	// authorship is checked per recipe in the service
	write := middleware.RequirePermission(enforcer, authz.ObjRecipe, authz.ActCreate)
	favorite := middleware.RequirePermission(enforcer, authz.ObjRecipe, authz.ActFavorite)
	cart := middleware.RequirePermission(enforcer, authz.ObjRecipe, authz.ActCart)

	recipeRoutes := api.Group("/recipes")
	{
		recipeRoutes.GET("/", read, recipeController.ListRecipes)
		recipeRoutes.POST("/", write, recipeController.CreateRecipe)
		recipeRoutes.GET("/download_shopping_cart/", cart, recipeController.DownloadShoppingCart)
		recipeRoutes.GET("/:id/", read, recipeController.GetRecipeByID)
		recipeRoutes.PATCH("/:id/", write, recipeController.UpdateRecipe)
		recipeRoutes.DELETE("/:id/", write, recipeController.DeleteRecipe)
		recipeRoutes.POST("/:id/favorite/", favorite, recipeController.AddFavorite)
		recipeRoutes.DELETE("/:id/favorite/", favorite, recipeController.RemoveFavorite)
		recipeRoutes.POST("/:id/shopping_cart/", cart, recipeController.AddToShoppingCart)
		recipeRoutes.DELETE("/:id/shopping_cart/", cart, recipeController.RemoveFromShoppingCart)
	}
}
