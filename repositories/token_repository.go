package repositories

import (
	"gigtax/models"

	"gorm.io/gorm"
)

// TokenRepository defines AuthToken-related database operations
type TokenRepository interface {
	Create(token *models.AuthToken) error
	FindByKey(key string) (*models.AuthToken, error)
	FindByUserID(userID uint) (*models.AuthToken, error)
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new TokenRepository instance
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(token *models.AuthToken) error {
	return r.db.Create(token).Error
}

func (r *tokenRepository) FindByKey(key string) (*models.AuthToken, error) {
	var token models.AuthToken
	if err := r.db.Preload("User").Where("`key` = ?", key).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepository) FindByUserID(userID uint) (*models.AuthToken, error) {
	var token models.AuthToken
	if err := r.db.Where("user_id = ?", userID).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}
