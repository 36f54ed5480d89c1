package controllers

import (
	"gigtax/models"
)

const dateLayout = "2006-01-02"

// Response structures mirror the store schema in snake_case, with owner
// associations embedded the way clients expect them.

type UserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type MusicianResponse struct {
	ID      uint         `json:"id"`
	User    UserResponse `json:"user"`
	Address string       `json:"address"`
}

type GigResponse struct {
	ID              uint             `json:"id"`
	Musician        MusicianResponse `json:"musician"`
	Artist          string           `json:"artist"`
	LocationName    string           `json:"location_name"`
	LocationAddress string           `json:"location_address"`
	GigDescription  string           `json:"gig_description"`
	Date            string           `json:"date"`
	GigPay          float64          `json:"gig_pay"`
	Mileage         int              `json:"mileage"`
}

type TourResponse struct {
	ID                   uint             `json:"id"`
	Musician             MusicianResponse `json:"musician"`
	Artist               string           `json:"artist"`
	TourDepartureAddress string           `json:"tour_departure_address"`
	LocationAddress      string           `json:"location_address"`
	TourDescription      string           `json:"tour_description"`
	NumberOfGigs         int              `json:"number_of_gigs"`
	PerDiem              float64          `json:"per_diem"`
	TravelDays           int              `json:"travel_days"`
	TravelDayPay         float64          `json:"travel_day_pay"`
	DateStart            string           `json:"date_start"`
	DateEnd              string           `json:"date_end"`
	TourGigPay           float64          `json:"tour_gig_pay"`
	Mileage              int              `json:"mileage"`
}

type ReceiptResponse struct {
	ID              uint              `json:"id"`
	Musician        MusicianResponse  `json:"musician"`
	BusinessName    string            `json:"business_name"`
	BusinessAddress string            `json:"business_address"`
	Description     string            `json:"description"`
	Date            string            `json:"date"`
	Price           float64           `json:"price"`
	ReceiptNumber   int               `json:"receipt_number"`
	Category        *CategoryResponse `json:"category"`
}

type CategoryResponse struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

func mapUserToResponse(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func mapMusicianToResponse(musician models.Musician) MusicianResponse {
	return MusicianResponse{
		ID:      musician.ID,
		User:    mapUserToResponse(musician.User),
		Address: musician.Address,
	}
}

func mapGigToResponse(gig *models.Gig) GigResponse {
	return GigResponse{
		ID:              gig.ID,
		Musician:        mapMusicianToResponse(gig.Musician),
		Artist:          gig.Artist,
		LocationName:    gig.LocationName,
		LocationAddress: gig.LocationAddress,
		GigDescription:  gig.GigDescription,
		Date:            gig.Date.Format(dateLayout),
		GigPay:          gig.GigPay,
		Mileage:         gig.Mileage,
	}
}

func mapTourToResponse(tour *models.Tour) TourResponse {
	return TourResponse{
		ID:                   tour.ID,
		Musician:             mapMusicianToResponse(tour.Musician),
		Artist:               tour.Artist,
		TourDepartureAddress: tour.TourDepartureAddress,
		LocationAddress:      tour.LocationAddress,
		TourDescription:      tour.TourDescription,
		NumberOfGigs:         tour.NumberOfGigs,
		PerDiem:              tour.PerDiem,
		TravelDays:           tour.TravelDays,
		TravelDayPay:         tour.TravelDayPay,
		DateStart:            tour.DateStart.Format(dateLayout),
		DateEnd:              tour.DateEnd.Format(dateLayout),
		TourGigPay:           tour.TourGigPay,
		Mileage:              tour.Mileage,
	}
}

func mapReceiptToResponse(receipt *models.Receipt) ReceiptResponse {
	resp := ReceiptResponse{
		ID:              receipt.ID,
		Musician:        mapMusicianToResponse(receipt.Musician),
		BusinessName:    receipt.BusinessName,
		BusinessAddress: receipt.BusinessAddress,
		Description:     receipt.Description,
		Date:            receipt.Date.Format(dateLayout),
		Price:           receipt.Price,
		ReceiptNumber:   receipt.ReceiptNumber,
	}
	if receipt.Category != nil {
		category := mapCategoryToResponse(receipt.Category)
		resp.Category = &category
	}
	return resp
}

func mapCategoryToResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:    category.ID,
		Label: category.Label,
	}
}
