package models

import "gorm.io/gorm"

// Musician is the per-user profile that owns all financial records.
type Musician struct {
	gorm.Model
	Address string `gorm:"size:100;not null"`
	UserID  uint   `gorm:"unique;not null"`
	User    User
}
