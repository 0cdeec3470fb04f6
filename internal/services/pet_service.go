package services

import (
	"petmatch/internal/filter"
	"petmatch/internal/models"
	"petmatch/internal/repositories"
)

// PetService handles business logic for pet listings, including the
// partial-update merge and the listing filters.
type PetService struct {
	repo repositories.PetRepository
}

// NewPetService creates a new PetService.
func NewPetService(repo repositories.PetRepository) *PetService {
	return &PetService{
		repo: repo,
	}
}

// Create lists a new pet under a shelter. Availability defaults to true.
func (s *PetService) Create(req models.PetCreateRequest, shelterID int64) (*models.Pet, error) {
	photos := req.Photos
	if photos == nil {
		photos = []string{}
	}

	pet := &models.Pet{
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Age:         req.Age,
		Gender:      req.Gender,
		Size:        req.Size,
		Description: req.Description,
		Photos:      photos,
		ShelterID:   shelterID,
		IsAvailable: true,
	}

	if err := s.repo.Create(pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// GetByShelter retrieves the pets owned by a shelter.
func (s *PetService) GetByShelter(shelterID int64) ([]models.Pet, error) {
	return s.repo.GetByShelter(shelterID)
}

// GetAll retrieves every pet.
func (s *PetService) GetAll() ([]models.Pet, error) {
	return s.repo.GetAll()
}

// GetAvailable retrieves all pets still open for adoption.
func (s *PetService) GetAvailable() ([]models.Pet, error) {
	return s.repo.GetAvailable()
}

// GetAvailableFiltered retrieves available pets matching the optional
// species/size/gender criteria. A nil criterion constrains nothing.
func (s *PetService) GetAvailableFiltered(species, size, gender *string) ([]models.Pet, error) {
	pets, err := s.repo.GetAvailable()
	if err != nil {
		return nil, err
	}
	return filter.Apply(pets, filter.Criteria{
		Species: species,
		Size:    size,
		Gender:  gender,
	}), nil
}

// Update merges the provided fields into the pet's current state and writes
// the result. Fields left unset on the request keep their stored values.
func (s *PetService) Update(id int64, req models.PetUpdateRequest) (*models.Pet, error) {
	pet, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Species != nil {
		pet.Species = *req.Species
	}
	if req.Breed != nil {
		pet.Breed = *req.Breed
	}
	if req.Age != nil {
		pet.Age = *req.Age
	}
	if req.Gender != nil {
		pet.Gender = *req.Gender
	}
	if req.Size != nil {
		pet.Size = *req.Size
	}
	if req.Description != nil {
		pet.Description = *req.Description
	}
	if req.Photos != nil {
		pet.Photos = req.Photos
	}
	if req.IsAvailable != nil {
		pet.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.Update(pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// Delete removes a pet listing. Deleting a missing id is not an error.
func (s *PetService) Delete(id int64) error {
	return s.repo.Delete(id)
}
