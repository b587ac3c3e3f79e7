package controllers

import (
	"net/http"

	"foodgram/internal/models"
	"foodgram/internal/repository"

	"github.com/gin-gonic/gin"
)

type IngredientController struct {
	repo repository.IngredientRepository
}

func NewIngredientController(repo repository.IngredientRepository) *IngredientController {
	return &IngredientController{repo: repo}
}

// ListIngredients godoc
// @Summary List ingredients
// @Description Ingredients ordered by name, unpaginated
// @Tags ingredients
// @Produce json
// @Param name query string false "Case-insensitive name prefix"
// @Success 200 {object} map[string]interface{} "Ingredients retrieved successfully"
// @Router /api/ingredients/ [get]
func (ic *IngredientController) ListIngredients(c *gin.Context) {
	ingredients, err := ic.repo.FindAll(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve ingredients")
		return
	}
	respondSuccess(c, http.StatusOK, "Ingredients retrieved successfully", ingredients)
}

// GetIngredientByID godoc
// @Summary Get an ingredient
// @Tags ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} map[string]interface{} "Ingredient retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Ingredient not found"
// @Router /api/ingredients/{id}/ [get]
func (ic *IngredientController) GetIngredientByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ingredient, err := ic.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve ingredient")
		return
	}

	respondSuccess(c, http.StatusOK, "Ingredient retrieved successfully", ingredient)
}

// CreateIngredient godoc
// @Summary Create an ingredient (admin)
// @Tags ingredients
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param ingredient body models.Ingredient true "Ingredient data"
// @Success 201 {object} map[string]interface{} "Ingredient created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Router /api/ingredients/ [post]
func (ic *IngredientController) CreateIngredient(c *gin.Context) {
	var ingredient models.Ingredient
	if err := c.ShouldBindJSON(&ingredient); err != nil {
		respondBindError(c, err)
		return
	}
	ingredient.ID = 0

	if err := ic.repo.Create(c.Request.Context(), &ingredient); err != nil {
		respondServiceError(c, err, "Ingredient with this name and unit already exists")
		return
	}

	respondSuccess(c, http.StatusCreated, "Ingredient created successfully", ingredient)
}

// DeleteIngredient godoc
// @Summary Delete an ingredient (admin)
// @Description Fails while any recipe still uses the ingredient
// @Tags ingredients
// @Security TokenAuth
// @Param id path int true "Ingredient ID"
// @Success 204 "Ingredient deleted"
// @Failure 400 {object} map[string]interface{} "Ingredient is used by recipes"
// @Failure 404 {object} map[string]interface{} "Ingredient not found"
// @Router /api/ingredients/{id}/ [delete]
func (ic *IngredientController) DeleteIngredient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ic.repo.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Ingredient is used by recipes")
		return
	}

	c.Status(http.StatusNoContent)
}
