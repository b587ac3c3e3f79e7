package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
	Email        string    `gorm:"type:varchar(254);uniqueIndex;not null" json:"email" example:"vpupkin@yandex.ru"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username" example:"vasya.pupkin"`
	FirstName    string    `gorm:"type:varchar(150);not null" json:"first_name" example:"Vasya"`
	LastName     string    `gorm:"type:varchar(150);not null" json:"last_name" example:"Pupkin"`
	PasswordHash string    `gorm:"not null" json:"-"`
	IsAdmin      bool      `gorm:"default:false" json:"-"`
}

// Role is the authorization role used by the permission policy.
func (u *User) Role() string {
	if u == nil {
		return RoleAnonymous
	}
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

const (
	RoleAnonymous = "anonymous"
	RoleUser      = "user"
	RoleAdmin     = "admin"
)
