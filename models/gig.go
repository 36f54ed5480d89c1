package models

import (
	"time"

	"gorm.io/gorm"
)

type Gig struct {
	gorm.Model
	MusicianID      uint `gorm:"not null;index"`
	Musician        Musician
	Artist          string    `gorm:"size:50;not null"`
	LocationName    string    `gorm:"size:50;not null"`
	LocationAddress string    `gorm:"size:100;not null"`
	GigDescription  string    `gorm:"size:150;not null"`
	Date            time.Time `gorm:"type:date;not null"`
	GigPay          float64   `gorm:"not null"`
	Mileage         int       `gorm:"not null"`
}
