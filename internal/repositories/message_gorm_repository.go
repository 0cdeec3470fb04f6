package repositories

import (
	"errors"

	"gorm.io/gorm"

	"petmatch/internal/apperrors"
	"petmatch/internal/models"
)

// GORMMessageRepository is a GORM implementation of MessageRepository.
type GORMMessageRepository struct {
	db *gorm.DB
}

// NewGORMMessageRepository creates a new instance of GORMMessageRepository.
func NewGORMMessageRepository(db *gorm.DB) *GORMMessageRepository {
	return &GORMMessageRepository{
		db: db,
	}
}

// Create persists a new message as a single atomic insert, so no reader
// observes a half-written row.
func (r *GORMMessageRepository) Create(message *models.Message) error {
	if err := r.db.Create(message).Error; err != nil {
		return apperrors.Storage(err, "failed to create message")
	}
	return nil
}

// GetByID retrieves a single message by its id.
func (r *GORMMessageRepository) GetByID(id int64) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("message with ID %d", id)
		}
		return nil, apperrors.Storage(err, "failed to get message by ID %d", id)
	}
	return &message, nil
}

// GetByShelter retrieves all messages addressed to a shelter.
func (r *GORMMessageRepository) GetByShelter(shelterID int64) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Where("shelter_id = ?", shelterID).Order("id ASC").Find(&messages).Error; err != nil {
		return nil, apperrors.Storage(err, "failed to get messages for shelter %d", shelterID)
	}
	return messages, nil
}

// GetByUser retrieves all messages sent by a user.
func (r *GORMMessageRepository) GetByUser(userID int64) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&messages).Error; err != nil {
		return nil, apperrors.Storage(err, "failed to get messages for user %d", userID)
	}
	return messages, nil
}

// MarkAsRead sets the read flag on a message. A missing id is an error.
func (r *GORMMessageRepository) MarkAsRead(id int64, isRead bool) error {
	res := r.db.Model(&models.Message{}).Where("id = ?", id).Update("is_read", isRead)
	if res.Error != nil {
		return apperrors.Storage(res.Error, "failed to mark message %d", id)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("message with ID %d not found for read update", id)
	}
	return nil
}

// Delete removes a message by id. Missing ids are ignored.
func (r *GORMMessageRepository) Delete(id int64) error {
	if err := r.db.Delete(&models.Message{}, "id = ?", id).Error; err != nil {
		return apperrors.Storage(err, "failed to delete message %d", id)
	}
	return nil
}

// UnreadCount returns the number of unread messages addressed to a shelter.
func (r *GORMMessageRepository) UnreadCount(shelterID int64) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Message{}).Where("shelter_id = ? AND is_read = ?", shelterID, false).Count(&count).Error; err != nil {
		return 0, apperrors.Storage(err, "failed to count unread messages for shelter %d", shelterID)
	}
	return count, nil
}
