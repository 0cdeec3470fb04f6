package repositories

import (
	"errors"

	"gorm.io/gorm"

	"petmatch/internal/apperrors"
	"petmatch/internal/models"
)

// GORMPetRepository is a GORM implementation of PetRepository.
type GORMPetRepository struct {
	db *gorm.DB
}

// NewGORMPetRepository creates a new instance of GORMPetRepository.
func NewGORMPetRepository(db *gorm.DB) *GORMPetRepository {
	return &GORMPetRepository{
		db: db,
	}
}

// Create persists a new pet. The database assigns the next ascending id.
func (r *GORMPetRepository) Create(pet *models.Pet) error {
	if err := r.db.Create(pet).Error; err != nil {
		return apperrors.Storage(err, "failed to create pet")
	}
	return nil
}

// GetByID retrieves a single pet by its id.
func (r *GORMPetRepository) GetByID(id int64) (*models.Pet, error) {
	var pet models.Pet
	if err := r.db.First(&pet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("pet with ID %d", id)
		}
		return nil, apperrors.Storage(err, "failed to get pet by ID %d", id)
	}
	return &pet, nil
}

// GetAll retrieves every pet in insertion order.
func (r *GORMPetRepository) GetAll() ([]models.Pet, error) {
	var pets []models.Pet
	if err := r.db.Order("id ASC").Find(&pets).Error; err != nil {
		return nil, apperrors.Storage(err, "failed to get all pets")
	}
	return pets, nil
}

// GetByShelter retrieves the pets owned by a shelter.
func (r *GORMPetRepository) GetByShelter(shelterID int64) ([]models.Pet, error) {
	var pets []models.Pet
	if err := r.db.Where("shelter_id = ?", shelterID).Order("id ASC").Find(&pets).Error; err != nil {
		return nil, apperrors.Storage(err, "failed to get pets for shelter %d", shelterID)
	}
	return pets, nil
}

// GetAvailable retrieves all pets still open for adoption.
func (r *GORMPetRepository) GetAvailable() ([]models.Pet, error) {
	var pets []models.Pet
	if err := r.db.Where("is_available = ?", true).Order("id ASC").Find(&pets).Error; err != nil {
		return nil, apperrors.Storage(err, "failed to get available pets")
	}
	return pets, nil
}

// Update writes the full pet row. The partial-update merge against current
// state is the service's job, keeping this adapter generic.
func (r *GORMPetRepository) Update(pet *models.Pet) error {
	res := r.db.Model(&models.Pet{}).Where("id = ?", pet.ID).Select("*").Omit("id").Updates(pet)
	if res.Error != nil {
		return apperrors.Storage(res.Error, "failed to update pet %d", pet.ID)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("pet with ID %d not found for update", pet.ID)
	}
	return nil
}

// Delete removes a pet by id. Deleting a missing id is not an error.
func (r *GORMPetRepository) Delete(id int64) error {
	if err := r.db.Delete(&models.Pet{}, "id = ?", id).Error; err != nil {
		return apperrors.Storage(err, "failed to delete pet %d", id)
	}
	return nil
}

// CountByShelter returns how many pets a shelter still lists.
func (r *GORMPetRepository) CountByShelter(shelterID int64) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Pet{}).Where("shelter_id = ?", shelterID).Count(&count).Error; err != nil {
		return 0, apperrors.Storage(err, "failed to count pets for shelter %d", shelterID)
	}
	return count, nil
}
