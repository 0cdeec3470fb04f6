package repositories

import (
	"sort"
	"sync"

	"petmatch/internal/apperrors"
	"petmatch/internal/models"
)

// MockPetRepository is an in-memory implementation of PetRepository. Ids are
// assigned from a monotonic counter so listings keep insertion order.
type MockPetRepository struct {
	pets   map[int64]models.Pet
	nextID int64
	mu     sync.RWMutex
}

// NewMockPetRepository creates a new instance of MockPetRepository.
func NewMockPetRepository() *MockPetRepository {
	return &MockPetRepository{
		pets: make(map[int64]models.Pet),
	}
}

// Create adds a new pet, assigning the next id.
func (r *MockPetRepository) Create(pet *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	pet.ID = r.nextID
	r.pets[pet.ID] = *pet
	return nil
}

// GetByID returns a pet by its id.
func (r *MockPetRepository) GetByID(id int64) (*models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pet, ok := r.pets[id]
	if !ok {
		return nil, apperrors.NotFound("pet with ID %d", id)
	}
	return &pet, nil
}

// GetAll returns all pets in ascending id order.
func (r *MockPetRepository) GetAll() ([]models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(models.Pet) bool { return true }), nil
}

// GetByShelter returns the pets owned by a shelter.
func (r *MockPetRepository) GetByShelter(shelterID int64) ([]models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(p models.Pet) bool { return p.ShelterID == shelterID }), nil
}

// GetAvailable returns all pets still open for adoption.
func (r *MockPetRepository) GetAvailable() ([]models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(p models.Pet) bool { return p.IsAvailable }), nil
}

// Update overwrites an existing pet.
func (r *MockPetRepository) Update(pet *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pets[pet.ID]; !ok {
		return apperrors.NotFound("pet with ID %d not found for update", pet.ID)
	}
	r.pets[pet.ID] = *pet
	return nil
}

// Delete removes a pet by id. Missing ids are ignored.
func (r *MockPetRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.pets, id)
	return nil
}

// CountByShelter returns how many pets a shelter still lists.
func (r *MockPetRepository) CountByShelter(shelterID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, p := range r.pets {
		if p.ShelterID == shelterID {
			count++
		}
	}
	return count, nil
}

// collect gathers matching pets sorted by ascending id. Callers must hold
// at least a read lock.
func (r *MockPetRepository) collect(match func(models.Pet) bool) []models.Pet {
	pets := make([]models.Pet, 0, len(r.pets))
	for _, p := range r.pets {
		if match(p) {
			pets = append(pets, p)
		}
	}
	sort.Slice(pets, func(i, j int) bool { return pets[i].ID < pets[j].ID })
	return pets
}
