package services

import (
	"errors"
	"time"

	"gigtax/auth"
	"gigtax/models"
	"gigtax/repositories"

	"gorm.io/gorm"
)

// The TourService interface defines owner-scoped tour operations.
type TourService interface {
	List(identity auth.Identity) ([]models.Tour, error)
	Retrieve(identity auth.Identity, id uint) (*models.Tour, error)
	Create(identity auth.Identity, input *TourInput) (*models.Tour, error)
	Update(identity auth.Identity, id uint, input *TourInput) error
	Delete(identity auth.Identity, id uint) error
}

// TourInput is the payload for creating or fully replacing a tour.
type TourInput struct {
	Artist               string   `json:"artist"`
	TourDepartureAddress string   `json:"tourDepartureAddress"`
	LocationAddress      string   `json:"locationAddress"`
	TourDescription      string   `json:"tourDescription"`
	NumberOfGigs         *int     `json:"numberOfGigs"`
	PerDiem              *float64 `json:"perDiem"`
	TravelDays           *int     `json:"travelDays"`
	TravelDayPay         *float64 `json:"travelDayPay"`
	DateStart            string   `json:"dateStart"`
	DateEnd              string   `json:"dateEnd"`
	TourGigPay           *float64 `json:"tourGigPay"`
	Mileage              *int     `json:"mileage"`
}

type tourService struct {
	repo repositories.TourRepository
}

var _ TourService = (*tourService)(nil)

// NewTourService creates a new TourService instance
func NewTourService(repo repositories.TourRepository) TourService {
	return &tourService{repo: repo}
}

func (s *tourService) List(identity auth.Identity) ([]models.Tour, error) {
	return s.repo.FindAllByMusician(identity.MusicianID)
}

func (s *tourService) Retrieve(identity auth.Identity, id uint) (*models.Tour, error) {
	tour, err := s.repo.FindOwned(id, identity.MusicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Tour"}
		}
		return nil, err
	}
	return tour, nil
}

func (s *tourService) Create(identity auth.Identity, input *TourInput) (*models.Tour, error) {
	dates, fields := validateTour(input)
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	tour := models.Tour{
		MusicianID:           identity.MusicianID,
		Artist:               input.Artist,
		TourDepartureAddress: input.TourDepartureAddress,
		LocationAddress:      input.LocationAddress,
		TourDescription:      input.TourDescription,
		NumberOfGigs:         *input.NumberOfGigs,
		PerDiem:              *input.PerDiem,
		TravelDays:           *input.TravelDays,
		TravelDayPay:         *input.TravelDayPay,
		DateStart:            dates[0],
		DateEnd:              dates[1],
		TourGigPay:           *input.TourGigPay,
		Mileage:              *input.Mileage,
	}
	if err := s.repo.Create(&tour); err != nil {
		return nil, err
	}

	return s.repo.FindOwned(tour.ID, identity.MusicianID)
}

func (s *tourService) Update(identity auth.Identity, id uint, input *TourInput) error {
	dates, fields := validateTour(input)
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	tour, err := s.repo.FindOwned(id, identity.MusicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Tour"}
		}
		return err
	}

	tour.MusicianID = identity.MusicianID
	tour.Artist = input.Artist
	tour.TourDepartureAddress = input.TourDepartureAddress
	tour.LocationAddress = input.LocationAddress
	tour.TourDescription = input.TourDescription
	tour.NumberOfGigs = *input.NumberOfGigs
	tour.PerDiem = *input.PerDiem
	tour.TravelDays = *input.TravelDays
	tour.TravelDayPay = *input.TravelDayPay
	tour.DateStart = dates[0]
	tour.DateEnd = dates[1]
	tour.TourGigPay = *input.TourGigPay
	tour.Mileage = *input.Mileage

	return s.repo.Update(tour)
}

func (s *tourService) Delete(identity auth.Identity, id uint) error {
	tour, err := s.repo.FindOwned(id, identity.MusicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Tour"}
		}
		return err
	}
	return s.repo.Delete(tour)
}

func validateTour(input *TourInput) ([2]time.Time, []string) {
	var fields []string
	var dates [2]time.Time
	if input.Artist == "" || len(input.Artist) > 50 {
		fields = append(fields, "artist")
	}
	if input.TourDepartureAddress == "" || len(input.TourDepartureAddress) > 100 {
		fields = append(fields, "tourDepartureAddress")
	}
	if input.LocationAddress == "" || len(input.LocationAddress) > 100 {
		fields = append(fields, "locationAddress")
	}
	if input.TourDescription == "" || len(input.TourDescription) > 150 {
		fields = append(fields, "tourDescription")
	}
	if input.NumberOfGigs == nil {
		fields = append(fields, "numberOfGigs")
	}
	if input.PerDiem == nil {
		fields = append(fields, "perDiem")
	}
	if input.TravelDays == nil {
		fields = append(fields, "travelDays")
	}
	if input.TravelDayPay == nil {
		fields = append(fields, "travelDayPay")
	}
	start, err := parseDate(input.DateStart)
	if err != nil {
		fields = append(fields, "dateStart")
	}
	end, err := parseDate(input.DateEnd)
	if err != nil {
		fields = append(fields, "dateEnd")
	}
	dates[0], dates[1] = start, end
	if input.TourGigPay == nil {
		fields = append(fields, "tourGigPay")
	}
	if input.Mileage == nil {
		fields = append(fields, "mileage")
	}
	return dates, fields
}
