package services

import (
	"petmatch/internal/apperrors"
	"petmatch/internal/models"
	"petmatch/internal/repositories"
)

// ShelterService handles shelter profile access and the deletion guard.
type ShelterService struct {
	shelterRepo repositories.ShelterRepository
	petRepo     repositories.PetRepository
}

// NewShelterService creates a new ShelterService.
func NewShelterService(shelterRepo repositories.ShelterRepository, petRepo repositories.PetRepository) *ShelterService {
	return &ShelterService{
		shelterRepo: shelterRepo,
		petRepo:     petRepo,
	}
}

// GetByID retrieves a shelter profile with the password hash redacted.
func (s *ShelterService) GetByID(id int64) (*models.Shelter, error) {
	shelter, err := s.shelterRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	shelter.PasswordHash = ""
	return shelter, nil
}

// Delete removes a shelter account. Deletion is refused while the shelter
// still lists pets; inquiry messages are kept as historical records.
func (s *ShelterService) Delete(id int64) error {
	count, err := s.petRepo.CountByShelter(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.Validation("shelter %d still lists %d pets", id, count)
	}
	return s.shelterRepo.Delete(id)
}
