package services

import (
	"log"
	"time"

	"github.com/google/uuid"

	"petmatch/internal/models"
	"petmatch/internal/repositories"
	"petmatch/pkg/rabbitmq"
)

// InquiryPublisher publishes inquiry events for downstream consumers. The
// RabbitMQ client satisfies it; tests substitute a mock.
type InquiryPublisher interface {
	PublishInquiryCreated(event rabbitmq.InquiryEvent) error
}

// MessageService handles business logic for inquiry messages.
type MessageService struct {
	repo      repositories.MessageRepository
	publisher InquiryPublisher // may be nil when messaging is disabled
}

// NewMessageService creates a new MessageService.
func NewMessageService(repo repositories.MessageRepository, publisher InquiryPublisher) *MessageService {
	return &MessageService{
		repo:      repo,
		publisher: publisher,
	}
}

// Create stores a new inquiry, stamping the creation time server-side with
// the read flag unset, then publishes an inquiry event. A publish failure is
// logged but does not fail the stored message.
func (s *MessageService) Create(req models.MessageRequest) (*models.Message, error) {
	message := &models.Message{
		PetID:       req.PetID,
		ShelterID:   req.ShelterID,
		UserID:      req.UserID,
		UserName:    req.UserName,
		UserEmail:   req.UserEmail,
		UserPhone:   req.UserPhone,
		MessageText: req.MessageText,
		CreatedAt:   time.Now().UTC(),
		IsRead:      false,
	}

	if err := s.repo.Create(message); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := rabbitmq.InquiryEvent{
			EventID:   uuid.New().String(),
			MessageID: message.ID,
			PetID:     message.PetID,
			ShelterID: message.ShelterID,
			UserID:    message.UserID,
			CreatedAt: message.CreatedAt,
		}
		if err := s.publisher.PublishInquiryCreated(event); err != nil {
			log.Printf("Warning: failed to publish inquiry event for message %d: %v", message.ID, err)
		}
	}

	return message, nil
}

// GetByShelter retrieves all messages addressed to a shelter.
func (s *MessageService) GetByShelter(shelterID int64) ([]models.Message, error) {
	return s.repo.GetByShelter(shelterID)
}

// GetByUser retrieves all messages sent by a user.
func (s *MessageService) GetByUser(userID int64) ([]models.Message, error) {
	return s.repo.GetByUser(userID)
}

// MarkAsRead sets the read flag on a message. A missing id is an error.
func (s *MessageService) MarkAsRead(id int64, isRead bool) error {
	return s.repo.MarkAsRead(id, isRead)
}

// Delete removes a message. Deleting a missing id is not an error.
func (s *MessageService) Delete(id int64) error {
	return s.repo.Delete(id)
}

// UnreadCount returns the number of unread messages addressed to a shelter.
func (s *MessageService) UnreadCount(shelterID int64) (int64, error) {
	return s.repo.UnreadCount(shelterID)
}
