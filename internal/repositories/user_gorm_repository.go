package repositories

import (
	"errors"

	"gorm.io/gorm"

	"petmatch/internal/apperrors"
	"petmatch/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create persists a new user account.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return apperrors.Storage(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by their id.
func (r *GORMUserRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user with ID %d", id)
		}
		return nil, apperrors.Storage(err, "failed to get user by ID %d", id)
	}
	return &user, nil
}

// GetByEmail retrieves a user by exact email match.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user with email %s", email)
		}
		return nil, apperrors.Storage(err, "failed to get user by email %s", email)
	}
	return &user, nil
}
