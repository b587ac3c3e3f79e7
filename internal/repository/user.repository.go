package repository

import (
	"context"
	"fmt"

	"foodgram/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context, page Page) ([]models.User, int64, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	DeleteUser(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (ur *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	return ur.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.User{}).Where("email = ? OR username = ?", user.Email, user.Username).Count(&taken).Error; err != nil {
			return fmt.Errorf("check user: %w", err)
		}
		if taken > 0 {
			return ErrAlreadyExists
		}
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("create user: %w", translate(err))
		}
		return nil
	})
}

func (ur *userRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := ur.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (ur *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := ur.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (ur *userRepository) ListUsers(ctx context.Context, page Page) ([]models.User, int64, error) {
	var (
		users []models.User
		count int64
	)
	if err := ur.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	if err := ur.db.WithContext(ctx).Order("id").Limit(page.Limit).Offset(page.Offset).Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, count, nil
}

func (ur *userRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	result := ur.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if result.Error != nil {
		return fmt.Errorf("update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes the user together with their recipes and every
// relation row pointing at either.
func (ur *userRepository) DeleteUser(ctx context.Context, id uint) error {
	return ur.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipeIDs := tx.Model(&models.Recipe{}).Select("id").Where("author_id = ?", id)
		if err := deleteRecipeRows(tx, recipeIDs); err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Recipe{}).Error; err != nil {
			return fmt.Errorf("delete recipes: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return fmt.Errorf("delete favorites: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.ShoppingCartEntry{}).Error; err != nil {
			return fmt.Errorf("delete cart: %w", err)
		}
		if err := tx.Where("user_id = ? OR author_id = ?", id, id).Delete(&models.Subscription{}).Error; err != nil {
			return fmt.Errorf("delete subscriptions: %w", err)
		}
		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
