package repositories

import (
	"gigtax/models"

	"gorm.io/gorm"
)

// ReceiptRepository defines Receipt-related database operations.
type ReceiptRepository interface {
	Create(receipt *models.Receipt) error
	FindOwned(id uint, musicianID uint) (*models.Receipt, error)
	FindAllByMusician(musicianID uint) ([]models.Receipt, error)
	Update(receipt *models.Receipt) error
	Delete(receipt *models.Receipt) error
}

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new ReceiptRepository instance
func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) Create(receipt *models.Receipt) error {
	return r.db.Create(receipt).Error
}

func (r *receiptRepository) FindOwned(id uint, musicianID uint) (*models.Receipt, error) {
	var receipt models.Receipt
	err := r.db.Preload("Musician.User").Preload("Category").
		Where("id = ? AND musician_id = ?", id, musicianID).
		First(&receipt).Error
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *receiptRepository) FindAllByMusician(musicianID uint) ([]models.Receipt, error) {
	var receipts []models.Receipt
	err := r.db.Preload("Musician.User").Preload("Category").
		Where("musician_id = ?", musicianID).
		Find(&receipts).Error
	if err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *receiptRepository) Update(receipt *models.Receipt) error {
	return r.db.Save(receipt).Error
}

func (r *receiptRepository) Delete(receipt *models.Receipt) error {
	return r.db.Delete(receipt).Error
}
