package models

import (
	"time"

	"gorm.io/gorm"
)

type Receipt struct {
	gorm.Model
	MusicianID      uint `gorm:"not null;index"`
	Musician        Musician
	BusinessName    string    `gorm:"size:50;not null"`
	BusinessAddress string    `gorm:"size:100;not null"`
	Description     string    `gorm:"size:150;not null"`
	Date            time.Time `gorm:"type:date;not null"`
	Price           float64   `gorm:"not null"`
	ReceiptNumber   int       `gorm:"not null"`
	CategoryID      *uint
	Category        *Category
}
