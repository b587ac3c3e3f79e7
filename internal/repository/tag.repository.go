package repository

import (
	"context"
	"fmt"
	"time"

	"foodgram/internal/cache"
	"foodgram/internal/logging"
	"foodgram/internal/metrics"
	"foodgram/internal/models"

	"gorm.io/gorm"
)

const allTagsCacheKey = "tags:all"

type TagRepository interface {
	FindAll(ctx context.Context) ([]models.Tag, error)
	FindByID(ctx context.Context, id uint) (*models.Tag, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, id uint) error
}

type tagRepository struct {
	db    *gorm.DB
	cache cache.Cache
	ttl   time.Duration
}

func NewTagRepository(db *gorm.DB, c cache.Cache, ttl time.Duration) TagRepository {
	if c == nil {
		c = cache.Noop{}
	}
	return &tagRepository{db: db, cache: c, ttl: ttl}
}

func (r *tagRepository) FindAll(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	hit, err := r.cache.Get(ctx, allTagsCacheKey, &tags)
	metrics.RecordCacheLookup("tags", hit && err == nil)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Failed to read tags from cache")
	} else if hit {
		return tags, nil
	}

	tags = nil
	if err := r.db.WithContext(ctx).Order("id").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	if err := r.cache.Set(ctx, allTagsCacheKey, tags, r.ttl); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Failed to cache tags")
	}
	return tags, nil
}

func (r *tagRepository) FindByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, translate(err)
	}
	return &tag, nil
}

func (r *tagRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	var tags []models.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("find tags: %w", err)
	}
	return tags, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.Tag{}).Where("slug = ?", tag.Slug).Count(&taken).Error; err != nil {
			return fmt.Errorf("check tag: %w", err)
		}
		if taken > 0 {
			return ErrAlreadyExists
		}
		if err := tx.Create(tag).Error; err != nil {
			return fmt.Errorf("create tag: %w", translate(err))
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&recipeTag{}).Error; err != nil {
			return fmt.Errorf("unlink tag: %w", err)
		}
		result := tx.Delete(&models.Tag{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete tag: %w", translate(result.Error))
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *tagRepository) invalidate(ctx context.Context) {
	if err := r.cache.Delete(ctx, allTagsCacheKey); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Failed to invalidate tag cache")
	}
}
