package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID            string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username      string     `gorm:"type:varchar(100);uniqueIndex" json:"username"`
	Email         string     `gorm:"type:varchar(100)" json:"email"`
	SelectedGoals string     `gorm:"type:text" json:"-"` // comma-joined goal keys
	Onboarded     bool       `gorm:"default:false" json:"onboarded"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
}

func (u *User) GetDisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
