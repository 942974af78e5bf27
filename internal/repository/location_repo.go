package repository

import (
	"go-stockroom/internal/model"

	"gorm.io/gorm"
)

type LocationRepository interface {
	FindAll() ([]model.Location, error)
	FindByID(id uint) (*model.Location, error)
	FindByName(name string) (*model.Location, error)
	Create(location *model.Location) error
}

type locationRepo struct {
	db *gorm.DB
}

func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{db}
}

func (r *locationRepo) FindAll() ([]model.Location, error) {
	var locations []model.Location
	err := r.db.Order("id").Find(&locations).Error
	return locations, err
}

func (r *locationRepo) FindByID(id uint) (*model.Location, error) {
	var location model.Location
	if err := r.db.First(&location, id).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepo) FindByName(name string) (*model.Location, error) {
	var location model.Location
	if err := r.db.Where("name = ?", name).First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepo) Create(location *model.Location) error {
	return r.db.Create(location).Error
}
