package models

import "gorm.io/gorm"

// AuthToken is the opaque bearer credential, issued once at registration.
// One active token per user; login returns the same key and nothing rotates it.
type AuthToken struct {
	gorm.Model
	Key    string `gorm:"size:500;unique;not null"`
	UserID uint   `gorm:"unique;not null"`
	User   User
}
