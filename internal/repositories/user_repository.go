package repositories

import (
	"petmatch/internal/models"
)

// UserRepository defines the interface for adopter account data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int64) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
