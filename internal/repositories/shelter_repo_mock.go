package repositories

import (
	"sync"

	"petmatch/internal/apperrors"
	"petmatch/internal/models"
)

// MockShelterRepository is an in-memory implementation of ShelterRepository.
type MockShelterRepository struct {
	shelters map[int64]models.Shelter
	nextID   int64
	mu       sync.RWMutex
}

// NewMockShelterRepository creates a new instance of MockShelterRepository.
func NewMockShelterRepository() *MockShelterRepository {
	return &MockShelterRepository{
		shelters: make(map[int64]models.Shelter),
	}
}

// Create adds a new shelter, assigning the next id.
func (r *MockShelterRepository) Create(shelter *models.Shelter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	shelter.ID = r.nextID
	r.shelters[shelter.ID] = *shelter
	return nil
}

// GetByID returns a shelter by its id.
func (r *MockShelterRepository) GetByID(id int64) (*models.Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shelter, ok := r.shelters[id]
	if !ok {
		return nil, apperrors.NotFound("shelter with ID %d", id)
	}
	return &shelter, nil
}

// GetByEmail returns a shelter by exact email match.
func (r *MockShelterRepository) GetByEmail(email string) (*models.Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.shelters {
		if s.Email == email {
			shelter := s
			return &shelter, nil
		}
	}
	return nil, apperrors.NotFound("shelter with email %s", email)
}

// Delete removes a shelter by id. Missing ids are ignored.
func (r *MockShelterRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.shelters, id)
	return nil
}
