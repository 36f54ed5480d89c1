package services

import (
	"errors"
	"time"

	"gigtax/auth"
	"gigtax/models"
	"gigtax/repositories"

	"gorm.io/gorm"
)

// The GigService interface defines owner-scoped gig operations.
type GigService interface {
	List(identity auth.Identity) ([]models.Gig, error)
	Retrieve(identity auth.Identity, id uint) (*models.Gig, error)
	Create(identity auth.Identity, input *GigInput) (*models.Gig, error)
	Update(identity auth.Identity, id uint, input *GigInput) error
	Delete(identity auth.Identity, id uint) error
}

// GigInput is the payload for creating or fully replacing a gig.
// All fields are required; numeric fields use pointers so a missing value
// can be told apart from zero.
type GigInput struct {
	Artist          string   `json:"artist"`
	LocationName    string   `json:"locationName"`
	LocationAddress string   `json:"locationAddress"`
	GigDescription  string   `json:"gigDescription"`
	Date            string   `json:"date"`
	GigPay          *float64 `json:"gigPay"`
	Mileage         *int     `json:"mileage"`
}

type gigService struct {
	repo repositories.GigRepository
}

var _ GigService = (*gigService)(nil)

// NewGigService creates a new GigService instance
func NewGigService(repo repositories.GigRepository) GigService {
	return &gigService{repo: repo}
}

func (s *gigService) List(identity auth.Identity) ([]models.Gig, error) {
	return s.repo.FindAllByMusician(identity.MusicianID)
}

func (s *gigService) Retrieve(identity auth.Identity, id uint) (*models.Gig, error) {
	gig, err := s.repo.FindOwned(id, identity.MusicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Gig"}
		}
		return nil, err
	}
	return gig, nil
}

func (s *gigService) Create(identity auth.Identity, input *GigInput) (*models.Gig, error) {
	date, fields := validateGig(input)
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	gig := models.Gig{
		MusicianID:      identity.MusicianID,
		Artist:          input.Artist,
		LocationName:    input.LocationName,
		LocationAddress: input.LocationAddress,
		GigDescription:  input.GigDescription,
		Date:            date,
		GigPay:          *input.GigPay,
		Mileage:         *input.Mileage,
	}
	if err := s.repo.Create(&gig); err != nil {
		return nil, err
	}

	// Re-fetch so the owner associations are populated for the response
	return s.repo.FindOwned(gig.ID, identity.MusicianID)
}

func (s *gigService) Update(identity auth.Identity, id uint, input *GigInput) error {
	date, fields := validateGig(input)
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	gig, err := s.repo.FindOwned(id, identity.MusicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Gig"}
		}
		return err
	}

	gig.MusicianID = identity.MusicianID
	gig.Artist = input.Artist
	gig.LocationName = input.LocationName
	gig.LocationAddress = input.LocationAddress
	gig.GigDescription = input.GigDescription
	gig.Date = date
	gig.GigPay = *input.GigPay
	gig.Mileage = *input.Mileage

	return s.repo.Update(gig)
}

func (s *gigService) Delete(identity auth.Identity, id uint) error {
	gig, err := s.repo.FindOwned(id, identity.MusicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Gig"}
		}
		return err
	}
	return s.repo.Delete(gig)
}

func validateGig(input *GigInput) (time.Time, []string) {
	var fields []string
	if input.Artist == "" || len(input.Artist) > 50 {
		fields = append(fields, "artist")
	}
	if input.LocationName == "" || len(input.LocationName) > 50 {
		fields = append(fields, "locationName")
	}
	if input.LocationAddress == "" || len(input.LocationAddress) > 100 {
		fields = append(fields, "locationAddress")
	}
	if input.GigDescription == "" || len(input.GigDescription) > 150 {
		fields = append(fields, "gigDescription")
	}
	date, err := parseDate(input.Date)
	if err != nil {
		fields = append(fields, "date")
	}
	if input.GigPay == nil {
		fields = append(fields, "gigPay")
	}
	if input.Mileage == nil {
		fields = append(fields, "mileage")
	}
	return date, fields
}
