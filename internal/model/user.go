package model

import (
	"time"
)

// swagger:model User
type User struct {
	ID                string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Username          string    `gorm:"size:100;uniqueIndex" json:"username"`
	Email             string    `gorm:"size:100;uniqueIndex" json:"email"`
	DisplayName       string    `gorm:"size:100" json:"displayName"`
	PreferredLanguage string    `gorm:"size:10;default:'ar'" json:"preferredLanguage"`
	PasswordHash      string    `gorm:"size:100" json:"-"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// PublicUser is the wire shape returned by the auth endpoints.
type PublicUser struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	DisplayName       string `json:"displayName"`
	PreferredLanguage string `json:"preferredLanguage"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		DisplayName:       u.DisplayName,
		PreferredLanguage: u.PreferredLanguage,
	}
}
