package repository

import (
	"context"
	"fmt"

	"foodgram/internal/models"

	"gorm.io/gorm"
)

type ShoppingCartRepository interface {
	Add(ctx context.Context, userID, recipeID uint) error
	Remove(ctx context.Context, userID, recipeID uint) error
	Exists(ctx context.Context, userID, recipeID uint) (bool, error)
	RecipeIDsFor(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error)
	// Aggregate sums ingredient amounts over every recipe in the user's
	// cart, grouped by ingredient name and unit, ordered by name.
	Aggregate(ctx context.Context, userID uint) ([]models.ShoppingListItem, error)
}

type shoppingCartRepository struct {
	*userRecipeRelation
}

func NewShoppingCartRepository(db *gorm.DB) ShoppingCartRepository {
	return &shoppingCartRepository{&userRecipeRelation{
		db:    db,
		model: &models.ShoppingCartEntry{},
		newRow: func(userID, recipeID uint) interface{} {
			return &models.ShoppingCartEntry{UserID: userID, RecipeID: recipeID}
		},
	}}
}

func (r *shoppingCartRepository) Aggregate(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem
	err := r.db.WithContext(ctx).
		Table("shopping_cart_entries").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS amount").
		Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = shopping_cart_entries.recipe_id").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("shopping_cart_entries.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name, ingredients.measurement_unit").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate shopping cart: %w", err)
	}
	return items, nil
}
