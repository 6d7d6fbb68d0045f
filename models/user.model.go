package models

import (
	"time"
)

type User struct {
	// ID is chosen by the client at login (trust-the-client identity),
	// so it is a plain string key rather than an autoincrement.
	ID string `gorm:"primaryKey;size:64" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"unique;not null;size:100" json:"email"`

	// Role & Profile
	Role      string `gorm:"size:10;not null;default:'buyer';check:chk_users_role,role IN ('buyer','seller')" json:"role"` // buyer, seller
	Bio       string `gorm:"type:text" json:"bio"`
	AvatarURL string `json:"avatar_url"`

	// System Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
