package services

import (
	"gigtax/models"
	"gigtax/repositories"
)

// The CategoryService interface exposes the shared category reference data.
type CategoryService interface {
	Retrieve(id uint) (*models.Category, error)
	List() ([]models.Category, error)
}

type categoryService struct {
	repo repositories.CategoryRepository
}

var _ CategoryService = (*categoryService)(nil)

// NewCategoryService creates a new CategoryService instance
func NewCategoryService(repo repositories.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Retrieve(id uint) (*models.Category, error) {
	return s.repo.FindByID(id)
}

func (s *categoryService) List() ([]models.Category, error) {
	return s.repo.FindAll()
}
