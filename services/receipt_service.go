package services

import (
	"errors"
	"time"

	"gigtax/auth"
	"gigtax/models"
	"gigtax/repositories"

	"gorm.io/gorm"
)

// The ReceiptService interface defines owner-scoped receipt operations.
type ReceiptService interface {
	List(identity auth.Identity) ([]models.Receipt, error)
	Retrieve(identity auth.Identity, id uint) (*models.Receipt, error)
	Create(identity auth.Identity, input *ReceiptInput) (*models.Receipt, error)
	Update(identity auth.Identity, id uint, input *ReceiptInput) error
	Delete(identity auth.Identity, id uint) error
}

// ReceiptInput is the payload for creating or fully replacing a receipt.
// Category is an optional reference into the shared category table.
type ReceiptInput struct {
	BusinessName    string   `json:"businessName"`
	BusinessAddress string   `json:"businessAddress"`
	Description     string   `json:"description"`
	Date            string   `json:"date"`
	Price           *float64 `json:"price"`
	ReceiptNumber   *int     `json:"receiptNumber"`
	Category        *uint    `json:"category"`
}

type receiptService struct {
	repo       repositories.ReceiptRepository
	categories repositories.CategoryRepository
}

var _ ReceiptService = (*receiptService)(nil)

// NewReceiptService creates a new ReceiptService instance
func NewReceiptService(repo repositories.ReceiptRepository, categories repositories.CategoryRepository) ReceiptService {
	return &receiptService{repo: repo, categories: categories}
}

func (s *receiptService) List(identity auth.Identity) ([]models.Receipt, error) {
	return s.repo.FindAllByMusician(identity.MusicianID)
}

func (s *receiptService) Retrieve(identity auth.Identity, id uint) (*models.Receipt, error) {
	receipt, err := s.repo.FindOwned(id, identity.MusicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Receipt"}
		}
		return nil, err
	}
	return receipt, nil
}

func (s *receiptService) Create(identity auth.Identity, input *ReceiptInput) (*models.Receipt, error) {
	date, fields, err := s.validateReceipt(input)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	receipt := models.Receipt{
		MusicianID:      identity.MusicianID,
		BusinessName:    input.BusinessName,
		BusinessAddress: input.BusinessAddress,
		Description:     input.Description,
		Date:            date,
		Price:           *input.Price,
		ReceiptNumber:   *input.ReceiptNumber,
		CategoryID:      input.Category,
	}
	if err := s.repo.Create(&receipt); err != nil {
		return nil, err
	}

	return s.repo.FindOwned(receipt.ID, identity.MusicianID)
}

func (s *receiptService) Update(identity auth.Identity, id uint, input *ReceiptInput) error {
	date, fields, err := s.validateReceipt(input)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	receipt, err := s.repo.FindOwned(id, identity.MusicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Receipt"}
		}
		return err
	}

	receipt.MusicianID = identity.MusicianID
	receipt.BusinessName = input.BusinessName
	receipt.BusinessAddress = input.BusinessAddress
	receipt.Description = input.Description
	receipt.Date = date
	receipt.Price = *input.Price
	receipt.ReceiptNumber = *input.ReceiptNumber
	receipt.CategoryID = input.Category
	receipt.Category = nil

	return s.repo.Update(receipt)
}

func (s *receiptService) Delete(identity auth.Identity, id uint) error {
	receipt, err := s.repo.FindOwned(id, identity.MusicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Receipt"}
		}
		return err
	}
	return s.repo.Delete(receipt)
}

// validateReceipt also checks that a referenced category exists; a dangling
// reference is reported as a validation failure, not a lookup error.
func (s *receiptService) validateReceipt(input *ReceiptInput) (time.Time, []string, error) {
	var fields []string
	if input.BusinessName == "" || len(input.BusinessName) > 50 {
		fields = append(fields, "businessName")
	}
	if input.BusinessAddress == "" || len(input.BusinessAddress) > 100 {
		fields = append(fields, "businessAddress")
	}
	if input.Description == "" || len(input.Description) > 150 {
		fields = append(fields, "description")
	}
	date, err := parseDate(input.Date)
	if err != nil {
		fields = append(fields, "date")
	}
	if input.Price == nil {
		fields = append(fields, "price")
	}
	if input.ReceiptNumber == nil {
		fields = append(fields, "receiptNumber")
	}
	if input.Category != nil {
		if _, err := s.categories.FindByID(*input.Category); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				fields = append(fields, "category")
			} else {
				return date, nil, err
			}
		}
	}
	return date, fields, nil
}
