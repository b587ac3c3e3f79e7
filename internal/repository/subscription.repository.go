package repository

import (
	"context"
	"fmt"

	"foodgram/internal/models"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Add(ctx context.Context, userID, authorID uint) error
	Remove(ctx context.Context, userID, authorID uint) error
	Exists(ctx context.Context, userID, authorID uint) (bool, error)
	// AuthorIDsFor reports which of authorIDs the user is subscribed to.
	AuthorIDsFor(ctx context.Context, userID uint, authorIDs []uint) (map[uint]bool, error)
	ListAuthors(ctx context.Context, userID uint, page Page) ([]models.User, int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Add(ctx context.Context, userID, authorID uint) error {
	if userID == authorID {
		return ErrSelfSubscription
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Subscription{}).Where("user_id = ? AND author_id = ?", userID, authorID).Count(&existing).Error; err != nil {
			return fmt.Errorf("check subscription: %w", err)
		}
		if existing > 0 {
			return ErrAlreadyExists
		}
		if err := tx.Create(&models.Subscription{UserID: userID, AuthorID: authorID}).Error; err != nil {
			return fmt.Errorf("create subscription: %w", translate(err))
		}
		return nil
	})
}

func (r *subscriptionRepository) Remove(ctx context.Context, userID, authorID uint) error {
	result := r.db.WithContext(ctx).Where("user_id = ? AND author_id = ?", userID, authorID).Delete(&models.Subscription{})
	if result.Error != nil {
		return fmt.Errorf("delete subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotInRelation
	}
	return nil
}

func (r *subscriptionRepository) Exists(ctx context.Context, userID, authorID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Subscription{}).Where("user_id = ? AND author_id = ?", userID, authorID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check subscription: %w", err)
	}
	return count > 0, nil
}

func (r *subscriptionRepository) AuthorIDsFor(ctx context.Context, userID uint, authorIDs []uint) (map[uint]bool, error) {
	found := make(map[uint]bool, len(authorIDs))
	if userID == 0 || len(authorIDs) == 0 {
		return found, nil
	}
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.Subscription{}).
		Where("user_id = ? AND author_id IN ?", userID, authorIDs).
		Pluck("author_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	for _, id := range ids {
		found[id] = true
	}
	return found, nil
}

func (r *subscriptionRepository) ListAuthors(ctx context.Context, userID uint, page Page) ([]models.User, int64, error) {
	var (
		authors []models.User
		count   int64
	)
	following := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.User{}).
			Joins("JOIN subscriptions ON subscriptions.author_id = users.id").
			Where("subscriptions.user_id = ?", userID)
	}
	if err := following().Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("count subscriptions: %w", err)
	}
	if err := following().Order("users.id").Limit(page.Limit).Offset(page.Offset).Find(&authors).Error; err != nil {
		return nil, 0, fmt.Errorf("list subscriptions: %w", err)
	}
	return authors, count, nil
}
