package services

import (
	"errors"

	"gigtax/auth"
	"gigtax/models"
	"gigtax/repositories"

	"gorm.io/gorm"
)

// The MusicianService interface defines musician profile operations.
type MusicianService interface {
	// Retrieve is self-lookup only: a musician can fetch its own profile
	// by id, any other id reads as not found.
	Retrieve(identity auth.Identity, id uint) (*models.Musician, error)
	// List returns every musician; a non-empty query filters by the owning
	// user's email, exact match.
	List(query string) ([]models.Musician, error)
	// Delete removes the musician and everything it owns in one transaction.
	Delete(id uint) error
}

type musicianService struct {
	repo repositories.MusicianRepository
}

var _ MusicianService = (*musicianService)(nil)

// NewMusicianService creates a new MusicianService instance
func NewMusicianService(repo repositories.MusicianRepository) MusicianService {
	return &musicianService{repo: repo}
}

func (s *musicianService) Retrieve(identity auth.Identity, id uint) (*models.Musician, error) {
	if id != identity.MusicianID {
		return nil, &NotFoundError{Resource: "Musician"}
	}
	musician, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Musician"}
		}
		return nil, err
	}
	return musician, nil
}

func (s *musicianService) List(query string) ([]models.Musician, error) {
	if query != "" {
		return s.repo.FindAllByUserEmail(query)
	}
	return s.repo.FindAll()
}

func (s *musicianService) Delete(id uint) error {
	if err := s.repo.DeleteCascade(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Musician"}
		}
		return err
	}
	return nil
}
