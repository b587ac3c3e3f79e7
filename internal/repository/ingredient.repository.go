package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"foodgram/internal/cache"
	"foodgram/internal/logging"
	"foodgram/internal/metrics"
	"foodgram/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const allIngredientsCacheKey = "ingredients:all"

type IngredientRepository interface {
	// FindAll lists ingredients ordered by name, optionally restricted to
	// names starting with prefix (case-insensitive).
	FindAll(ctx context.Context, prefix string) ([]models.Ingredient, error)
	FindByID(ctx context.Context, id uint) (*models.Ingredient, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error)
	Create(ctx context.Context, ingredient *models.Ingredient) error
	// BulkCreate inserts ingredients, skipping (name, unit) pairs that already
	// exist, and returns how many rows were added.
	BulkCreate(ctx context.Context, ingredients []models.Ingredient) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type ingredientRepository struct {
	db    *gorm.DB
	cache cache.Cache
	ttl   time.Duration
}

func NewIngredientRepository(db *gorm.DB, c cache.Cache, ttl time.Duration) IngredientRepository {
	if c == nil {
		c = cache.Noop{}
	}
	return &ingredientRepository{db: db, cache: c, ttl: ttl}
}

func (r *ingredientRepository) FindAll(ctx context.Context, prefix string) ([]models.Ingredient, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))

	var ingredients []models.Ingredient
	// only the unfiltered listing is cached; prefixes change with every keystroke
	if prefix == "" {
		hit, err := r.cache.Get(ctx, allIngredientsCacheKey, &ingredients)
		metrics.RecordCacheLookup("ingredients", hit && err == nil)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("Failed to read ingredients from cache")
		} else if hit {
			return ingredients, nil
		}
		ingredients = nil
	}

	query := r.db.WithContext(ctx).Order("LOWER(name)").Order("id")
	if prefix != "" {
		query = query.Where("LOWER(name) LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%")
	}
	if err := query.Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}

	if prefix == "" {
		if err := r.cache.Set(ctx, allIngredientsCacheKey, ingredients, r.ttl); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("Failed to cache ingredients")
		}
	}
	return ingredients, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *ingredientRepository) FindByID(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.WithContext(ctx).First(&ingredient, id).Error; err != nil {
		return nil, translate(err)
	}
	return &ingredient, nil
}

func (r *ingredientRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("find ingredients: %w", err)
	}
	return ingredients, nil
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *models.Ingredient) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.Ingredient{}).
			Where("name = ? AND measurement_unit = ?", ingredient.Name, ingredient.MeasurementUnit).
			Count(&taken).Error; err != nil {
			return fmt.Errorf("check ingredient: %w", err)
		}
		if taken > 0 {
			return ErrAlreadyExists
		}
		if err := tx.Create(ingredient).Error; err != nil {
			return fmt.Errorf("create ingredient: %w", translate(err))
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *ingredientRepository) BulkCreate(ctx context.Context, ingredients []models.Ingredient) (int64, error) {
	var created int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range ingredients {
			ing := ingredients[i]
			var existing int64
			if err := tx.Model(&models.Ingredient{}).
				Where("name = ? AND measurement_unit = ?", ing.Name, ing.MeasurementUnit).
				Count(&existing).Error; err != nil {
				return fmt.Errorf("check ingredient %q: %w", ing.Name, err)
			}
			if existing > 0 {
				continue
			}
			ing.ID = 0
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&ing)
			if result.Error != nil {
				return fmt.Errorf("create ingredient %q: %w", ing.Name, result.Error)
			}
			created += result.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	r.invalidate(ctx)
	return created, nil
}

func (r *ingredientRepository) Delete(ctx context.Context, id uint) error {
	var used int64
	if err := r.db.WithContext(ctx).Model(&models.RecipeIngredient{}).Where("ingredient_id = ?", id).Count(&used).Error; err != nil {
		return fmt.Errorf("check ingredient usage: %w", err)
	}
	if used > 0 {
		return ErrInUse
	}
	result := r.db.WithContext(ctx).Delete(&models.Ingredient{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete ingredient: %w", translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	r.invalidate(ctx)
	return nil
}

func (r *ingredientRepository) invalidate(ctx context.Context) {
	if err := r.cache.Delete(ctx, allIngredientsCacheKey); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Failed to invalidate ingredient cache")
	}
}
