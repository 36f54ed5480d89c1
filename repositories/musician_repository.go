package repositories

import (
	"gigtax/models"

	"gorm.io/gorm"
)

// MusicianRepository defines Musician-related database operations
type MusicianRepository interface {
	Create(musician *models.Musician) error
	FindByID(id uint) (*models.Musician, error)
	FindByUserID(userID uint) (*models.Musician, error)
	FindAll() ([]models.Musician, error)
	FindAllByUserEmail(email string) ([]models.Musician, error)
	// DeleteCascade removes the musician together with every record it owns,
	// inside a single transaction.
	DeleteCascade(id uint) error
}

type musicianRepository struct {
	db *gorm.DB
}

// NewMusicianRepository creates a new MusicianRepository instance
func NewMusicianRepository(db *gorm.DB) MusicianRepository {
	return &musicianRepository{db: db}
}

func (r *musicianRepository) Create(musician *models.Musician) error {
	return r.db.Create(musician).Error
}

func (r *musicianRepository) FindByID(id uint) (*models.Musician, error) {
	var musician models.Musician
	if err := r.db.Preload("User").First(&musician, id).Error; err != nil {
		return nil, err
	}
	return &musician, nil
}

func (r *musicianRepository) FindByUserID(userID uint) (*models.Musician, error) {
	var musician models.Musician
	if err := r.db.Preload("User").Where("user_id = ?", userID).First(&musician).Error; err != nil {
		return nil, err
	}
	return &musician, nil
}

func (r *musicianRepository) FindAll() ([]models.Musician, error) {
	var musicians []models.Musician
	if err := r.db.Preload("User").Find(&musicians).Error; err != nil {
		return nil, err
	}
	return musicians, nil
}

// FindAllByUserEmail matches on the owning user's email, exact match only.
func (r *musicianRepository) FindAllByUserEmail(email string) ([]models.Musician, error) {
	var musicians []models.Musician
	err := r.db.Preload("User").
		Joins("JOIN users ON users.id = musicians.user_id").
		Where("users.email = ?", email).
		Find(&musicians).Error
	if err != nil {
		return nil, err
	}
	return musicians, nil
}

func (r *musicianRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var musician models.Musician
		if err := tx.First(&musician, id).Error; err != nil {
			return err
		}
		if err := tx.Where("musician_id = ?", id).Delete(&models.Gig{}).Error; err != nil {
			return err
		}
		if err := tx.Where("musician_id = ?", id).Delete(&models.Tour{}).Error; err != nil {
			return err
		}
		if err := tx.Where("musician_id = ?", id).Delete(&models.Receipt{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", musician.UserID).Delete(&models.AuthToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&musician).Error
	})
}
