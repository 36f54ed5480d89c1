package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gigtax/config"
	"gigtax/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB() *gorm.DB {
	dsn := config.AppConfig.DatabaseURL

	// GORM logger configuration
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		panic(fmt.Errorf("failed to connect database: %w", err))
	}

	if err := Migrate(db); err != nil {
		panic(fmt.Errorf("failed to migrate database: %w", err))
	}

	DB = db

	// Seed reference data that receipts link against
	SeedCategories(db)

	return db
}

// Migrate creates/updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Musician{},
		&models.AuthToken{},
		&models.Category{},
		&models.Gig{},
		&models.Tour{},
		&models.Receipt{},
	)
}

// SeedCategories inserts the fixed set of expense categories if they are missing.
func SeedCategories(db *gorm.DB) {
	labels := []string{"Equipment", "Travel", "Lodging", "Meals", "Supplies", "Other"}

	for _, label := range labels {
		var existing models.Category
		err := db.Where("label = ?", label).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&models.Category{Label: label}).Error; err != nil {
				log.Printf("Failed to seed category %s: %v\n", label, err)
			}
		}
	}
}
