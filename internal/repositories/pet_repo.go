package repositories

import (
	"petmatch/internal/models"
)

// PetRepository defines the interface for pet data access. List operations
// return pets in insertion order (ascending id).
type PetRepository interface {
	Create(pet *models.Pet) error
	GetByID(id int64) (*models.Pet, error)
	GetAll() ([]models.Pet, error)
	GetByShelter(shelterID int64) ([]models.Pet, error)
	GetAvailable() ([]models.Pet, error)
	Update(pet *models.Pet) error
	Delete(id int64) error
	CountByShelter(shelterID int64) (int64, error)
}
