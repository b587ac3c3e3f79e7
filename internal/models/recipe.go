package models

import "time"

type Recipe struct {
	ID          uint      `gorm:"primaryKey"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	Name        string             `gorm:"type:varchar(200);not null"`
	Text        string             `gorm:"type:text;not null"`
	CookingTime int                `gorm:"not null;check:chk_recipes_cooking_time,cooking_time >= 1"`
	Image       string             `gorm:"type:varchar(255);not null"`
	AuthorID    uint               `gorm:"not null;index"`
	Author      User               `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Tags        []Tag              `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// RecipeIngredient carries the amount of one ingredient in one recipe.
type RecipeIngredient struct {
	ID           uint       `gorm:"primaryKey"`
	RecipeID     uint       `gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	IngredientID uint       `gorm:"not null;uniqueIndex:idx_recipe_ingredient;index"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT"`
	Amount       int        `gorm:"not null;check:chk_recipe_ingredients_amount,amount >= 1"`
}

// RecipeFilter narrows recipe listings. Zero values mean "no filter".
type RecipeFilter struct {
	AuthorID         uint
	TagSlugs         []string
	FavoritedBy      uint
	InShoppingCartOf uint
}

// ShoppingListItem is one aggregated line of a user's shopping list.
type ShoppingListItem struct {
	Name            string
	MeasurementUnit string
	Amount          int64
}
