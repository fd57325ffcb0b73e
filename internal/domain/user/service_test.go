package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewCredentialsValidator(), slog.Default())

	fullname := "John Doe"
	email := "john@example.com"
	password := "secret123"

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u User) bool {
		return u.Fullname == fullname &&
			u.Email == email &&
			u.PasswordHash != "" &&
			u.ID != uuid.Nil &&
			u.ProfileImageURL == GravatarURL(email)
	})).Return(nil)

	u, err := service.Register(context.Background(), fullname, email, password)
	assert.NoError(t, err)
	assert.Equal(t, fullname, u.Fullname)
	assert.NotEqual(t, password, u.PasswordHash)

	// Пароль хранится только в виде bcrypt-хэша.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)))

	mockRepo.AssertExpectations(t)
}

func TestService_Register_InvalidInput(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewCredentialsValidator(), slog.Default())

	tests := []struct {
		name     string
		fullname string
		email    string
		password string
	}{
		{name: "missing fullname", fullname: "", email: "a@b.com", password: "pass"},
		{name: "missing email", fullname: "John", email: "", password: "pass"},
		{name: "invalid email", fullname: "John", email: "not-an-email", password: "pass"},
		{name: "missing password", fullname: "John", email: "a@b.com", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), tt.fullname, tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Register_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewCredentialsValidator(), slog.Default())

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("User")).Return(ErrAlreadyExists)

	_, err := service.Register(context.Background(), "John Doe", "john@example.com", "secret123")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewCredentialsValidator(), slog.Default())

	email := "john@example.com"
	password := "secret123"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)

	stored := User{
		ID:           uuid.New(),
		Fullname:     "John Doe",
		Email:        email,
		PasswordHash: string(hash),
	}

	mockRepo.On("FindByEmail", mock.Anything, email).Return(stored, nil)

	u, err := service.Authenticate(context.Background(), email, password)
	assert.NoError(t, err)
	assert.Equal(t, stored.ID, u.ID)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_WrongPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewCredentialsValidator(), slog.Default())

	email := "john@example.com"

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockRepo.On("FindByEmail", mock.Anything, email).Return(User{Email: email, PasswordHash: string(hash)}, nil)

	_, err = service.Authenticate(context.Background(), email, "wrong")
	assert.ErrorIs(t, err, ErrInvalidAuth)
}

func TestService_Authenticate_UnknownUser(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewCredentialsValidator(), slog.Default())

	mockRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(User{}, ErrNotFound)

	// Неизвестный пользователь и неверный пароль дают одну и ту же ошибку.
	_, err := service.Authenticate(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidAuth)
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewCredentialsValidator(), slog.Default())

	id := uuid.New()
	mockRepo.On("Delete", mock.Anything, id).Return(nil)

	assert.NoError(t, service.Delete(context.Background(), id))
	mockRepo.AssertExpectations(t)
}

func TestService_Delete_Error(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewCredentialsValidator(), slog.Default())

	id := uuid.New()
	mockRepo.On("Delete", mock.Anything, id).Return(errors.New("database error"))

	err := service.Delete(context.Background(), id)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}

func TestGravatarURL(t *testing.T) {
	// Email нормализуется: обрезаются пробелы, регистр приводится к нижнему.
	url1 := GravatarURL("John@Example.com ")
	url2 := GravatarURL("john@example.com")
	assert.Equal(t, url1, url2)
	assert.Contains(t, url1, "https://www.gravatar.com/avatar/")
	assert.Contains(t, url1, "?d=identicon")
}
