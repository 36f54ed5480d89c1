package models

import "gorm.io/gorm"

// Category is shared reference data for receipts; it has no owner.
type Category struct {
	gorm.Model
	Label string `gorm:"size:50;unique;not null"`
}
