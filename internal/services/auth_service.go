package services

import (
	"errors"
	"fmt"
	"time"

	"petmatch/internal/apperrors"
	"petmatch/internal/models"
	"petmatch/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and login for both account kinds. One
// email namespace spans shelters and users, so login resolves the role from
// whichever table holds the address.
type AuthService struct {
	userRepo    repositories.UserRepository
	shelterRepo repositories.ShelterRepository
	jwtSecret   []byte
	tokenDurat  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, shelterRepo repositories.ShelterRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		shelterRepo: shelterRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenDurat:  24 * time.Hour,
	}
}

// RegisterUser hashes the supplied secret and stores a new adopter account.
func (s *AuthService) RegisterUser(user *models.User) (int64, error) {
	if err := s.ensureEmailFree(user.Email); err != nil {
		return 0, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hashed)

	if err := s.userRepo.Create(user); err != nil {
		return 0, fmt.Errorf("failed to register user: %w", err)
	}
	return user.ID, nil
}

// RegisterShelter hashes the supplied secret and stores a new shelter account.
func (s *AuthService) RegisterShelter(shelter *models.Shelter) (int64, error) {
	if err := s.ensureEmailFree(shelter.Email); err != nil {
		return 0, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(shelter.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}
	shelter.PasswordHash = string(hashed)

	if err := s.shelterRepo.Create(shelter); err != nil {
		return 0, fmt.Errorf("failed to register shelter: %w", err)
	}
	return shelter.ID, nil
}

// Login authenticates either account kind by email. Shelters are checked
// first, then users. Mismatch and missing account both yield the same
// generic authentication error.
func (s *AuthService) Login(email, secret string) (*models.LoginResponse, error) {
	shelter, err := s.shelterRepo.GetByEmail(email)
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(shelter.PasswordHash), []byte(secret)) == nil {
			return s.loginResponse(shelter.ID, models.RoleShelter)
		}
		return nil, apperrors.ErrAuthentication
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(email)
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(secret)) == nil {
			return s.loginResponse(user.ID, models.RoleUser)
		}
		return nil, apperrors.ErrAuthentication
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	return nil, apperrors.ErrAuthentication
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Account returns the stored account for a role/id pair with the password
// hash redacted. Used by the authenticated profile endpoint.
func (s *AuthService) Account(role string, id int64) (interface{}, error) {
	switch role {
	case models.RoleShelter:
		shelter, err := s.shelterRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		shelter.PasswordHash = ""
		return shelter, nil
	case models.RoleUser:
		user, err := s.userRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = ""
		return user, nil
	}
	return nil, apperrors.Validation("unknown role %q", role)
}

func (s *AuthService) loginResponse(id int64, role string) (*models.LoginResponse, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account_id": id,
		"role":       role,
		"exp":        time.Now().Add(s.tokenDurat).Unix(),
		"iat":        time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{ID: id, Role: role, Token: tokenString}, nil
}

// ensureEmailFree rejects registration when the email already belongs to a
// shelter or a user account.
func (s *AuthService) ensureEmailFree(email string) error {
	if shelter, err := s.shelterRepo.GetByEmail(email); err == nil && shelter != nil {
		return apperrors.Validation("email '%s' already registered", email)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	if user, err := s.userRepo.GetByEmail(email); err == nil && user != nil {
		return apperrors.Validation("email '%s' already registered", email)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	return nil
}
