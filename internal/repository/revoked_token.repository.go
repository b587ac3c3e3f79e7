package repository

import (
	"context"
	"fmt"
	"time"

	"foodgram/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RevokedTokenRepository interface {
	Revoke(ctx context.Context, jti string, userID uint, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string, now time.Time) (bool, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

type revokedTokenRepository struct {
	db *gorm.DB
}

func NewRevokedTokenRepository(db *gorm.DB) RevokedTokenRepository {
	return &revokedTokenRepository{db: db}
}

// Revoke is idempotent: revoking the same token twice keeps the first row.
func (r *revokedTokenRepository) Revoke(ctx context.Context, jti string, userID uint, expiresAt time.Time) error {
	row := models.RevokedToken{JTI: jti, UserID: userID, ExpiresAt: expiresAt}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("revoke token: %w", translate(err))
	}
	return nil
}

func (r *revokedTokenRepository) IsRevoked(ctx context.Context, jti string, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.RevokedToken{}).
		Where("jti = ? AND expires_at > ?", jti, now).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return count > 0, nil
}

func (r *revokedTokenRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&models.RevokedToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("purge revoked tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}
