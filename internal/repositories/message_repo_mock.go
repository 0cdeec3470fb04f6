package repositories

import (
	"sort"
	"sync"

	"petmatch/internal/apperrors"
	"petmatch/internal/models"
)

// MockMessageRepository is an in-memory implementation of MessageRepository.
type MockMessageRepository struct {
	messages map[int64]models.Message
	nextID   int64
	mu       sync.RWMutex
}

// NewMockMessageRepository creates a new instance of MockMessageRepository.
func NewMockMessageRepository() *MockMessageRepository {
	return &MockMessageRepository{
		messages: make(map[int64]models.Message),
	}
}

// Create adds a new message, assigning the next id.
func (r *MockMessageRepository) Create(message *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	message.ID = r.nextID
	r.messages[message.ID] = *message
	return nil
}

// GetByID returns a message by its id.
func (r *MockMessageRepository) GetByID(id int64) (*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	message, ok := r.messages[id]
	if !ok {
		return nil, apperrors.NotFound("message with ID %d", id)
	}
	return &message, nil
}

// GetByShelter returns all messages addressed to a shelter.
func (r *MockMessageRepository) GetByShelter(shelterID int64) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(m models.Message) bool { return m.ShelterID == shelterID }), nil
}

// GetByUser returns all messages sent by a user.
func (r *MockMessageRepository) GetByUser(userID int64) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(m models.Message) bool { return m.UserID == userID }), nil
}

// MarkAsRead sets the read flag on a message. A missing id is an error.
func (r *MockMessageRepository) MarkAsRead(id int64, isRead bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	message, ok := r.messages[id]
	if !ok {
		return apperrors.NotFound("message with ID %d not found for read update", id)
	}
	message.IsRead = isRead
	r.messages[id] = message
	return nil
}

// Delete removes a message by id. Missing ids are ignored.
func (r *MockMessageRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.messages, id)
	return nil
}

// UnreadCount returns the number of unread messages addressed to a shelter.
func (r *MockMessageRepository) UnreadCount(shelterID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, m := range r.messages {
		if m.ShelterID == shelterID && !m.IsRead {
			count++
		}
	}
	return count, nil
}

// collect gathers matching messages sorted by ascending id. Callers must
// hold at least a read lock.
func (r *MockMessageRepository) collect(match func(models.Message) bool) []models.Message {
	messages := make([]models.Message, 0, len(r.messages))
	for _, m := range r.messages {
		if match(m) {
			messages = append(messages, m)
		}
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })
	return messages
}
