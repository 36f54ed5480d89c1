package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username  string `gorm:"size:150;unique;not null"`
	Password  string `gorm:"not null" json:"-"` // Don't expose password hash
	Email     string `gorm:"size:254"`
	FirstName string `gorm:"size:150"`
	LastName  string `gorm:"size:150"`
}
