package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"petmatch/internal/apperrors"
	"petmatch/internal/models"
	"petmatch/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id int64) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockShelterRepository is a mock implementation of repositories.ShelterRepository.
type MockShelterRepository struct {
	mock.Mock
}

func (m *MockShelterRepository) Create(shelter *models.Shelter) error {
	args := m.Called(shelter)
	return args.Error(0)
}

func (m *MockShelterRepository) GetByID(id int64) (*models.Shelter, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shelter), args.Error(1)
}

func (m *MockShelterRepository) GetByEmail(email string) (*models.Shelter, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shelter), args.Error(1)
}

func (m *MockShelterRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

const testJWTSecret = "test_jwt_secret"

func newAuthService(userRepo *MockUserRepository, shelterRepo *MockShelterRepository) *services.AuthService {
	return services.NewAuthService(userRepo, shelterRepo, testJWTSecret)
}

func TestAuthService_RegisterUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	shelterRepo := new(MockShelterRepository)
	authService := newAuthService(userRepo, shelterRepo)

	user := &models.User{
		Name:         "Jan",
		Surname:      "Kowalski",
		Email:        "jan@example.com",
		PasswordHash: "password123",
		Address:      "ul. Polna 1",
		Phone:        "123456789",
	}

	shelterRepo.On("GetByEmail", user.Email).Return(nil, apperrors.NotFound("shelter with email %s", user.Email)).Once()
	userRepo.On("GetByEmail", user.Email).Return(nil, apperrors.NotFound("user with email %s", user.Email)).Once()
	userRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = 1
	}).Return(nil).Once()

	id, err := authService.RegisterUser(user)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)
	// The stored secret must be a bcrypt hash of the supplied value.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
	userRepo.AssertExpectations(t)
	shelterRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	shelterRepo := new(MockShelterRepository)
	authService := newAuthService(userRepo, shelterRepo)

	user := &models.User{
		Name:         "Jan",
		Surname:      "Kowalski",
		Email:        "taken@example.com",
		PasswordHash: "password123",
		Address:      "ul. Polna 1",
		Phone:        "123456789",
	}

	// Email already owned by a shelter account.
	shelterRepo.On("GetByEmail", user.Email).Return(&models.Shelter{ID: 4, Email: user.Email}, nil).Once()

	_, err := authService.RegisterUser(user)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "already registered")
	shelterRepo.AssertExpectations(t)
}

func TestAuthService_RegisterShelter(t *testing.T) {
	userRepo := new(MockUserRepository)
	shelterRepo := new(MockShelterRepository)
	authService := newAuthService(userRepo, shelterRepo)

	shelter := &models.Shelter{
		Name:         "Ala",
		Email:        "ala@x.com",
		PasswordHash: "sekret123",
		Address:      "ul. Leśna 2",
		Phone:        "987654321",
	}

	shelterRepo.On("GetByEmail", shelter.Email).Return(nil, apperrors.NotFound("shelter with email %s", shelter.Email)).Once()
	userRepo.On("GetByEmail", shelter.Email).Return(nil, apperrors.NotFound("user with email %s", shelter.Email)).Once()
	shelterRepo.On("Create", mock.AnythingOfType("*models.Shelter")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Shelter).ID = 1
	}).Return(nil).Once()

	id, err := authService.RegisterShelter(shelter)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)
	shelterRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_Shelter(t *testing.T) {
	userRepo := new(MockUserRepository)
	shelterRepo := new(MockShelterRepository)
	authService := newAuthService(userRepo, shelterRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("sekret123"), bcrypt.DefaultCost)
	shelter := &models.Shelter{ID: 1, Name: "Ala", Email: "ala@x.com", PasswordHash: string(hashed)}

	// Correct password yields the shelter role and a token.
	shelterRepo.On("GetByEmail", shelter.Email).Return(shelter, nil).Once()
	resp, err := authService.Login("ala@x.com", "sekret123")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, models.RoleShelter, resp.Role)
	assert.NotEmpty(t, resp.Token)

	claims, err := authService.ValidateToken(resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleShelter, claims["role"])
	assert.Equal(t, float64(1), claims["account_id"])

	// Wrong password fails with the generic authentication error.
	shelterRepo.On("GetByEmail", shelter.Email).Return(shelter, nil).Once()
	_, err = authService.Login("ala@x.com", "wrongpassword")
	assert.ErrorIs(t, err, apperrors.ErrAuthentication)
	shelterRepo.AssertExpectations(t)
}

func TestAuthService_Login_User(t *testing.T) {
	userRepo := new(MockUserRepository)
	shelterRepo := new(MockShelterRepository)
	authService := newAuthService(userRepo, shelterRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: 7, Name: "Jan", Email: "jan@example.com", PasswordHash: string(hashed)}

	shelterRepo.On("GetByEmail", user.Email).Return(nil, apperrors.NotFound("shelter with email %s", user.Email)).Once()
	userRepo.On("GetByEmail", user.Email).Return(user, nil).Once()

	resp, err := authService.Login("jan@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, models.RoleUser, resp.Role)
	userRepo.AssertExpectations(t)
	shelterRepo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	shelterRepo := new(MockShelterRepository)
	authService := newAuthService(userRepo, shelterRepo)

	shelterRepo.On("GetByEmail", "ghost@x.com").Return(nil, apperrors.NotFound("shelter with email %s", "ghost@x.com")).Once()
	userRepo.On("GetByEmail", "ghost@x.com").Return(nil, apperrors.NotFound("user with email %s", "ghost@x.com")).Once()

	_, err := authService.Login("ghost@x.com", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrAuthentication)
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	authService := newAuthService(new(MockUserRepository), new(MockShelterRepository))

	_, err := authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestAuthService_Account_RedactsPasswordHash(t *testing.T) {
	userRepo := new(MockUserRepository)
	shelterRepo := new(MockShelterRepository)
	authService := newAuthService(userRepo, shelterRepo)

	shelterRepo.On("GetByID", int64(1)).Return(&models.Shelter{ID: 1, Name: "Ala", PasswordHash: "hash"}, nil).Once()

	account, err := authService.Account(models.RoleShelter, 1)
	assert.NoError(t, err)
	shelter, ok := account.(*models.Shelter)
	assert.True(t, ok)
	assert.Empty(t, shelter.PasswordHash)
	shelterRepo.AssertExpectations(t)
}
