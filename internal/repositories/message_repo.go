package repositories

import (
	"petmatch/internal/models"
)

// MessageRepository defines the interface for inquiry message data access.
// Listings are in insertion order (ascending id).
type MessageRepository interface {
	Create(message *models.Message) error
	GetByID(id int64) (*models.Message, error)
	GetByShelter(shelterID int64) ([]models.Message, error)
	GetByUser(userID int64) ([]models.Message, error)
	MarkAsRead(id int64, isRead bool) error
	Delete(id int64) error
	UnreadCount(shelterID int64) (int64, error)
}
