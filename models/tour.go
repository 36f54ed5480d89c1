package models

import (
	"time"

	"gorm.io/gorm"
)

type Tour struct {
	gorm.Model
	MusicianID           uint `gorm:"not null;index"`
	Musician             Musician
	Artist               string    `gorm:"size:50;not null"`
	TourDepartureAddress string    `gorm:"size:100;not null"`
	LocationAddress      string    `gorm:"size:100;not null"`
	TourDescription      string    `gorm:"size:150;not null"`
	NumberOfGigs         int       `gorm:"not null"`
	PerDiem              float64   `gorm:"not null"`
	TravelDays           int       `gorm:"not null"`
	TravelDayPay         float64   `gorm:"not null"`
	DateStart            time.Time `gorm:"type:date;not null"`
	DateEnd              time.Time `gorm:"type:date;not null"`
	TourGigPay           float64   `gorm:"not null"`
	Mileage              int       `gorm:"not null"`
}
