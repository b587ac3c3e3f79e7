package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"foodgram/internal/middleware"
	"foodgram/internal/services"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	recipes   services.RecipeService
	relations services.RelationService
	shopping  services.ShoppingListService
	pager     Pager
}

func NewRecipeController(recipes services.RecipeService, relations services.RelationService, shopping services.ShoppingListService, pager Pager) *RecipeController {
	return &RecipeController{recipes: recipes, relations: relations, shopping: shopping, pager: pager}
}

func queryFlag(raw string) bool {
	switch strings.ToLower(raw) {
	case "1", "true":
		return true
	}
	return false
}

func parseRecipeQuery(c *gin.Context) (services.RecipeQuery, error) {
	query := services.RecipeQuery{
		Tags:             c.QueryArray("tags"),
		IsFavorited:      queryFlag(c.Query("is_favorited")),
		IsInShoppingCart: queryFlag(c.Query("is_in_shopping_cart")),
	}
	if raw := c.Query("author"); raw != "" {
		author, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return query, services.NewValidationError("author", "Enter a number.")
		}
		query.Author = uint(author)
	}
	return query, nil
}

// ListRecipes godoc
// @Summary List recipes
// @Description Newest first. is_favorited and is_in_shopping_cart only apply to authenticated users.
// @Tags recipes
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param author query int false "Author ID"
// @Param tags query []string false "Tag slugs, any of" collectionFormat(multi)
// @Param is_favorited query int false "1 to show favorites only"
// @Param is_in_shopping_cart query int false "1 to show cart recipes only"
// @Success 200 {object} map[string]interface{} "Recipes retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Invalid page"
// @Router /api/recipes/ [get]
func (rc *RecipeController) ListRecipes(c *gin.Context) {
	query, err := parseRecipeQuery(c)
	if err != nil {
		respondServiceError(c, err, "Invalid request data")
		return
	}
	params, ok := rc.pager.params(c)
	if !ok {
		return
	}

	recipes, count, err := rc.recipes.List(c.Request.Context(), middleware.CurrentUser(c), query, params)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve recipes")
		return
	}
	page, err := rc.pager.page(c, params, count, recipes)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve recipes")
		return
	}

	respondSuccess(c, http.StatusOK, "Recipes retrieved successfully", page)
}

// CreateRecipe godoc
// @Summary Publish a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param recipe body services.RecipeWriteRequest true "Recipe data"
// @Success 201 {object} map[string]interface{} "Recipe created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Authentication credentials were not provided"
// @Router /api/recipes/ [post]
func (rc *RecipeController) CreateRecipe(c *gin.Context) {
	var req services.RecipeWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	recipe, err := rc.recipes.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create recipe")
		return
	}

	respondSuccess(c, http.StatusCreated, "Recipe created successfully", recipe)
}

// GetRecipeByID godoc
// @Summary Get a recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /api/recipes/{id}/ [get]
func (rc *RecipeController) GetRecipeByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	recipe, err := rc.recipes.Get(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve recipe")
		return
	}

	respondSuccess(c, http.StatusOK, "Recipe retrieved successfully", recipe)
}

// UpdateRecipe godoc
// @Summary Update a recipe
// @Description Author or admin only. Tags and ingredients are replaced; image may be omitted to keep the current one.
// @Tags recipes
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Recipe ID"
// @Param recipe body services.RecipeWriteRequest true "Recipe data"
// @Success 200 {object} map[string]interface{} "Recipe updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /api/recipes/{id}/ [patch]
func (rc *RecipeController) UpdateRecipe(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req services.RecipeWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	recipe, err := rc.recipes.Update(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update recipe")
		return
	}

	respondSuccess(c, http.StatusOK, "Recipe updated successfully", recipe)
}

// DeleteRecipe godoc
// @Summary Delete a recipe
// @Description Author or admin only
// @Tags recipes
// @Security TokenAuth
// @Param id path int true "Recipe ID"
// @Success 204 "Recipe deleted"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /api/recipes/{id}/ [delete]
func (rc *RecipeController) DeleteRecipe(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := rc.recipes.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondServiceError(c, err, "Failed to delete recipe")
		return
	}

	c.Status(http.StatusNoContent)
}

// AddFavorite godoc
// @Summary Add a recipe to favorites
// @Tags recipes
// @Produce json
// @Security TokenAuth
// @Param id path int true "Recipe ID"
// @Success 201 {object} map[string]interface{} "Recipe added to favorites"
// @Failure 400 {object} map[string]interface{} "Recipe is already in favorites"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /api/recipes/{id}/favorite/ [post]
func (rc *RecipeController) AddFavorite(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	recipe, err := rc.relations.AddFavorite(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondServiceError(c, err, "Failed to add favorite")
		return
	}

	respondSuccess(c, http.StatusCreated, "Recipe added to favorites", recipe)
}

// RemoveFavorite godoc
// @Summary Remove a recipe from favorites
// @Tags recipes
// @Security TokenAuth
// @Param id path int true "Recipe ID"
// @Success 204 "Recipe removed from favorites"
// @Failure 404 {object} map[string]interface{} "Recipe is not in favorites"
// @Router /api/recipes/{id}/favorite/ [delete]
func (rc *RecipeController) RemoveFavorite(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := rc.relations.RemoveFavorite(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondServiceError(c, err, "Failed to remove favorite")
		return
	}

	c.Status(http.StatusNoContent)
}

// AddToShoppingCart godoc
// @Summary Add a recipe to the shopping cart
// @Tags recipes
// @Produce json
// @Security TokenAuth
// @Param id path int true "Recipe ID"
// @Success 201 {object} map[string]interface{} "Recipe added to shopping cart"
// @Failure 400 {object} map[string]interface{} "Recipe is already in the shopping cart"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /api/recipes/{id}/shopping_cart/ [post]
func (rc *RecipeController) AddToShoppingCart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	recipe, err := rc.relations.AddToCart(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondServiceError(c, err, "Failed to add to shopping cart")
		return
	}

	respondSuccess(c, http.StatusCreated, "Recipe added to shopping cart", recipe)
}

// RemoveFromShoppingCart godoc
// @Summary Remove a recipe from the shopping cart
// @Tags recipes
// @Security TokenAuth
// @Param id path int true "Recipe ID"
// @Success 204 "Recipe removed from shopping cart"
// @Failure 404 {object} map[string]interface{} "Recipe is not in the shopping cart"
// @Router /api/recipes/{id}/shopping_cart/ [delete]
func (rc *RecipeController) RemoveFromShoppingCart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := rc.relations.RemoveFromCart(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondServiceError(c, err, "Failed to remove from shopping cart")
		return
	}

	c.Status(http.StatusNoContent)
}

// DownloadShoppingCart godoc
// @Summary Download the shopping list
// @Description Ingredients of every recipe in the cart, summed per name and unit, as a PDF
// @Tags recipes
// @Produce application/pdf
// @Security TokenAuth
// @Success 200 {file} file "shopping_cart.pdf"
// @Failure 401 {object} map[string]interface{} "Authentication credentials were not provided"
// @Router /api/recipes/download_shopping_cart/ [get]
func (rc *RecipeController) DownloadShoppingCart(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "Authentication required", "Authentication credentials were not provided.")
		return
	}

	data, err := rc.shopping.Export(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to generate shopping list")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ShoppingListFilename))
	c.Data(http.StatusOK, "application/pdf", data)
}
