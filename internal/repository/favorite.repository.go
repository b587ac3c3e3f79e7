package repository

import (
	"context"
	"fmt"

	"foodgram/internal/models"

	"gorm.io/gorm"
)

// userRecipeRelation implements the shared user/recipe link operations of
// favorites and shopping cart entries.
type userRecipeRelation struct {
	db     *gorm.DB
	model  interface{}
	newRow func(userID, recipeID uint) interface{}
}

func (r *userRecipeRelation) Add(ctx context.Context, userID, recipeID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(r.model).Where("user_id = ? AND recipe_id = ?", userID, recipeID).Count(&existing).Error; err != nil {
			return fmt.Errorf("check relation: %w", err)
		}
		if existing > 0 {
			return ErrAlreadyExists
		}
		if err := tx.Create(r.newRow(userID, recipeID)).Error; err != nil {
			return fmt.Errorf("create relation: %w", translate(err))
		}
		return nil
	})
}

func (r *userRecipeRelation) Remove(ctx context.Context, userID, recipeID uint) error {
	result := r.db.WithContext(ctx).Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(r.model)
	if result.Error != nil {
		return fmt.Errorf("delete relation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotInRelation
	}
	return nil
}

func (r *userRecipeRelation) Exists(ctx context.Context, userID, recipeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(r.model).Where("user_id = ? AND recipe_id = ?", userID, recipeID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check relation: %w", err)
	}
	return count > 0, nil
}

func (r *userRecipeRelation) RecipeIDsFor(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error) {
	found := make(map[uint]bool, len(recipeIDs))
	if userID == 0 || len(recipeIDs) == 0 {
		return found, nil
	}
	var ids []uint
	err := r.db.WithContext(ctx).Model(r.model).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list relations: %w", err)
	}
	for _, id := range ids {
		found[id] = true
	}
	return found, nil
}

type FavoriteRepository interface {
	Add(ctx context.Context, userID, recipeID uint) error
	Remove(ctx context.Context, userID, recipeID uint) error
	Exists(ctx context.Context, userID, recipeID uint) (bool, error)
	// RecipeIDsFor reports which of recipeIDs the user has favorited.
	RecipeIDsFor(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error)
}

type favoriteRepository struct {
	*userRecipeRelation
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{&userRecipeRelation{
		db:    db,
		model: &models.Favorite{},
		newRow: func(userID, recipeID uint) interface{} {
			return &models.Favorite{UserID: userID, RecipeID: recipeID}
		},
	}}
}
