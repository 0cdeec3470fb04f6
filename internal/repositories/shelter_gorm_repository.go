package repositories

import (
	"errors"

	"gorm.io/gorm"

	"petmatch/internal/apperrors"
	"petmatch/internal/models"
)

// GORMShelterRepository is a GORM implementation of ShelterRepository.
type GORMShelterRepository struct {
	db *gorm.DB
}

// NewGORMShelterRepository creates a new instance of GORMShelterRepository.
func NewGORMShelterRepository(db *gorm.DB) *GORMShelterRepository {
	return &GORMShelterRepository{
		db: db,
	}
}

// Create persists a new shelter account.
func (r *GORMShelterRepository) Create(shelter *models.Shelter) error {
	if err := r.db.Create(shelter).Error; err != nil {
		return apperrors.Storage(err, "failed to create shelter")
	}
	return nil
}

// GetByID retrieves a shelter by its id.
func (r *GORMShelterRepository) GetByID(id int64) (*models.Shelter, error) {
	var shelter models.Shelter
	if err := r.db.First(&shelter, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("shelter with ID %d", id)
		}
		return nil, apperrors.Storage(err, "failed to get shelter by ID %d", id)
	}
	return &shelter, nil
}

// GetByEmail retrieves a shelter by exact email match.
func (r *GORMShelterRepository) GetByEmail(email string) (*models.Shelter, error) {
	var shelter models.Shelter
	if err := r.db.First(&shelter, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("shelter with email %s", email)
		}
		return nil, apperrors.Storage(err, "failed to get shelter by email %s", email)
	}
	return &shelter, nil
}

// Delete removes a shelter by id. Missing ids are ignored; the pets-exist
// guard lives in the service layer.
func (r *GORMShelterRepository) Delete(id int64) error {
	if err := r.db.Delete(&models.Shelter{}, "id = ?", id).Error; err != nil {
		return apperrors.Storage(err, "failed to delete shelter %d", id)
	}
	return nil
}
