package models

import "time"

// RevokedToken keeps a logged-out token id until the token would have
// expired on its own.
type RevokedToken struct {
	JTI       string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}
