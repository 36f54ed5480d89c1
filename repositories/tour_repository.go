package repositories

import (
	"gigtax/models"

	"gorm.io/gorm"
)

// TourRepository defines Tour-related database operations.
type TourRepository interface {
	Create(tour *models.Tour) error
	FindOwned(id uint, musicianID uint) (*models.Tour, error)
	FindAllByMusician(musicianID uint) ([]models.Tour, error)
	Update(tour *models.Tour) error
	Delete(tour *models.Tour) error
}

type tourRepository struct {
	db *gorm.DB
}

// NewTourRepository creates a new TourRepository instance
func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

func (r *tourRepository) Create(tour *models.Tour) error {
	return r.db.Create(tour).Error
}

func (r *tourRepository) FindOwned(id uint, musicianID uint) (*models.Tour, error) {
	var tour models.Tour
	err := r.db.Preload("Musician.User").
		Where("id = ? AND musician_id = ?", id, musicianID).
		First(&tour).Error
	if err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *tourRepository) FindAllByMusician(musicianID uint) ([]models.Tour, error) {
	var tours []models.Tour
	err := r.db.Preload("Musician.User").
		Where("musician_id = ?", musicianID).
		Find(&tours).Error
	if err != nil {
		return nil, err
	}
	return tours, nil
}

func (r *tourRepository) Update(tour *models.Tour) error {
	return r.db.Save(tour).Error
}

func (r *tourRepository) Delete(tour *models.Tour) error {
	return r.db.Delete(tour).Error
}
