package service

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
)

// CatalogService manages the two lookup tables items reference
type CatalogService interface {
	ListCategories() ([]model.Category, error)
	CreateCategory(req *CreateNameRequest) (*model.Category, error)
	ListLocations() ([]model.Location, error)
	CreateLocation(req *CreateNameRequest) (*model.Location, error)
}

type CreateNameRequest struct {
	Name string `json:"name" validate:"required"`
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
}

func NewCatalogService(categoryRepo repository.CategoryRepository, locationRepo repository.LocationRepository) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

func (s *catalogService) ListCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *catalogService) CreateCategory(req *CreateNameRequest) (*model.Category, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	if existing, _ := s.categoryRepo.FindByName(req.Name); existing != nil {
		return nil, ErrDuplicateName
	}

	category := &model.Category{Name: req.Name}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) ListLocations() ([]model.Location, error) {
	return s.locationRepo.FindAll()
}

func (s *catalogService) CreateLocation(req *CreateNameRequest) (*model.Location, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	if existing, _ := s.locationRepo.FindByName(req.Name); existing != nil {
		return nil, ErrDuplicateName
	}

	location := &model.Location{Name: req.Name}
	if err := s.locationRepo.Create(location); err != nil {
		return nil, err
	}
	return location, nil
}
