package repositories

import (
	"petmatch/internal/models"
)

// ShelterRepository defines the interface for shelter data access.
type ShelterRepository interface {
	Create(shelter *models.Shelter) error
	GetByID(id int64) (*models.Shelter, error)
	GetByEmail(email string) (*models.Shelter, error)
	Delete(id int64) error
}
