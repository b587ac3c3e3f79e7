package repository

import (
	"context"
	"fmt"
	"time"

	"foodgram/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecipeRepository interface {
	// Create stores the recipe, its tag links and ingredient amounts. Tags
	// only need their ID set; ingredients only IngredientID and Amount.
	Create(ctx context.Context, recipe *models.Recipe) error
	// Update overwrites the scalar fields and replaces tags and ingredients.
	Update(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Recipe, error)
	List(ctx context.Context, filter models.RecipeFilter, page Page) ([]models.Recipe, int64, error)
	// ListByAuthor returns the author's newest recipes; limit < 0 means all.
	ListByAuthor(ctx context.Context, authorID uint, limit int) ([]models.Recipe, error)
	CountByAuthors(ctx context.Context, authorIDs []uint) (map[uint]int64, error)
}

// recipeTag is a row of the many2many join table behind Recipe.Tags.
type recipeTag struct {
	RecipeID uint
	TagID    uint
}

func (recipeTag) TableName() string { return "recipe_tags" }

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return fmt.Errorf("create recipe: %w", translate(err))
		}
		return writeRecipeLinks(tx, recipe)
	})
}

func (r *recipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Updates(map[string]interface{}{
			"name":         recipe.Name,
			"text":         recipe.Text,
			"cooking_time": recipe.CookingTime,
			"image":        recipe.Image,
			"updated_at":   time.Now(),
		})
		if result.Error != nil {
			return fmt.Errorf("update recipe: %w", translate(result.Error))
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&recipeTag{}).Error; err != nil {
			return fmt.Errorf("clear recipe tags: %w", err)
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return fmt.Errorf("clear recipe ingredients: %w", err)
		}
		return writeRecipeLinks(tx, recipe)
	})
}

func writeRecipeLinks(tx *gorm.DB, recipe *models.Recipe) error {
	if len(recipe.Tags) > 0 {
		links := make([]recipeTag, 0, len(recipe.Tags))
		for _, tag := range recipe.Tags {
			links = append(links, recipeTag{RecipeID: recipe.ID, TagID: tag.ID})
		}
		if err := tx.Create(&links).Error; err != nil {
			return fmt.Errorf("link recipe tags: %w", translate(err))
		}
	}
	if len(recipe.Ingredients) > 0 {
		for i := range recipe.Ingredients {
			recipe.Ingredients[i].ID = 0
			recipe.Ingredients[i].RecipeID = recipe.ID
		}
		if err := tx.Omit("Ingredient").Create(&recipe.Ingredients).Error; err != nil {
			return fmt.Errorf("store recipe ingredients: %w", translate(err))
		}
	}
	return nil
}

func (r *recipeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteRecipeRows(tx, []uint{id}); err != nil {
			return err
		}
		result := tx.Delete(&models.Recipe{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete recipe: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// deleteRecipeRows removes every row that references the given recipes.
// recipeIDs is either a []uint or a subquery selecting recipe ids.
func deleteRecipeRows(tx *gorm.DB, recipeIDs interface{}) error {
	for _, m := range []interface{}{
		&recipeTag{},
		&models.RecipeIngredient{},
		&models.Favorite{},
		&models.ShoppingCartEntry{},
	} {
		if err := tx.Where("recipe_id IN (?)", recipeIDs).Delete(m).Error; err != nil {
			return fmt.Errorf("delete recipe relations: %w", err)
		}
	}
	return nil
}

func preloadRecipe(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.id") }).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("recipe_ingredients.id") }).
		Preload("Ingredients.Ingredient")
}

func (r *recipeRepository) GetByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := preloadRecipe(r.db.WithContext(ctx)).First(&recipe, id).Error; err != nil {
		return nil, translate(err)
	}
	return &recipe, nil
}

func (r *recipeRepository) filtered(ctx context.Context, filter models.RecipeFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Recipe{})
	if filter.AuthorID != 0 {
		query = query.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		tagged := r.db.Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs)
		query = query.Where("recipes.id IN (?)", tagged)
	}
	if filter.FavoritedBy != 0 {
		favorited := r.db.Model(&models.Favorite{}).Select("recipe_id").Where("user_id = ?", filter.FavoritedBy)
		query = query.Where("recipes.id IN (?)", favorited)
	}
	if filter.InShoppingCartOf != 0 {
		inCart := r.db.Model(&models.ShoppingCartEntry{}).Select("recipe_id").Where("user_id = ?", filter.InShoppingCartOf)
		query = query.Where("recipes.id IN (?)", inCart)
	}
	return query
}

func (r *recipeRepository) List(ctx context.Context, filter models.RecipeFilter, page Page) ([]models.Recipe, int64, error) {
	var (
		recipes []models.Recipe
		count   int64
	)
	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("count recipes: %w", err)
	}
	err := preloadRecipe(r.filtered(ctx, filter)).
		Order("recipes.created_at DESC").Order("recipes.id DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, count, nil
}

func (r *recipeRepository) ListByAuthor(ctx context.Context, authorID uint, limit int) ([]models.Recipe, error) {
	var recipes []models.Recipe
	query := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").Order("id DESC")
	if limit >= 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("list author recipes: %w", err)
	}
	return recipes, nil
}

type authorRecipeCount struct {
	AuthorID uint
	Total    int64
}

func (r *recipeRepository) CountByAuthors(ctx context.Context, authorIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(authorIDs))
	if len(authorIDs) == 0 {
		return counts, nil
	}
	var rows []authorRecipeCount
	err := r.db.WithContext(ctx).Model(&models.Recipe{}).
		Select("author_id, COUNT(*) AS total").
		Where("author_id IN ?", authorIDs).
		Group("author_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count author recipes: %w", err)
	}
	for _, row := range rows {
		counts[row.AuthorID] = row.Total
	}
	return counts, nil
}
