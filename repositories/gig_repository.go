package repositories

import (
	"gigtax/models"

	"gorm.io/gorm"
)

// GigRepository defines Gig-related database operations.
// Lookups are always scoped to the owning musician.
type GigRepository interface {
	Create(gig *models.Gig) error
	FindOwned(id uint, musicianID uint) (*models.Gig, error)
	FindAllByMusician(musicianID uint) ([]models.Gig, error)
	Update(gig *models.Gig) error
	Delete(gig *models.Gig) error
}

type gigRepository struct {
	db *gorm.DB
}

// NewGigRepository creates a new GigRepository instance
func NewGigRepository(db *gorm.DB) GigRepository {
	return &gigRepository{db: db}
}

func (r *gigRepository) Create(gig *models.Gig) error {
	return r.db.Create(gig).Error
}

func (r *gigRepository) FindOwned(id uint, musicianID uint) (*models.Gig, error) {
	var gig models.Gig
	err := r.db.Preload("Musician.User").
		Where("id = ? AND musician_id = ?", id, musicianID).
		First(&gig).Error
	if err != nil {
		return nil, err
	}
	return &gig, nil
}

func (r *gigRepository) FindAllByMusician(musicianID uint) ([]models.Gig, error) {
	var gigs []models.Gig
	err := r.db.Preload("Musician.User").
		Where("musician_id = ?", musicianID).
		Find(&gigs).Error
	if err != nil {
		return nil, err
	}
	return gigs, nil
}

func (r *gigRepository) Update(gig *models.Gig) error {
	return r.db.Save(gig).Error
}

func (r *gigRepository) Delete(gig *models.Gig) error {
	return r.db.Delete(gig).Error
}
