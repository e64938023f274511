package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models/dto"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/repositories"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/pkg/apperrors"
)

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.Email]; ok {
		return repositories.ErrEmailAlreadyExists
	}
	user.ID = f.nextID
	f.nextID++
	cp := *user
	f.users[user.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) GenerateToken(_ *models.User) (string, int, error) {
	return "token", 3600, nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), fakeTokenIssuer{})

	user, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    " Staff@Example.com ",
		Password: "supersecret",
		FullName: "Aisha Bello",
	})
	require.NoError(t, err)
	assert.Equal(t, "staff@example.com", user.Email, "email is lower-cased and trimmed")
	assert.Equal(t, models.RoleStaff, user.Role, "API registration always yields staff accounts")
	assert.NotEqual(t, "supersecret", user.PasswordHash)

	token, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "staff@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "token", token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, 3600, token.ExpiresIn)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), fakeTokenIssuer{})

	req := dto.RegisterRequest{Email: "staff@example.com", Password: "supersecret", FullName: "Aisha Bello"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterShortPassword(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), fakeTokenIssuer{})

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "staff@example.com",
		Password: "short",
		FullName: "Aisha Bello",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), fakeTokenIssuer{})

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "staff@example.com",
		Password: "supersecret",
		FullName: "Aisha Bello",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "staff@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), fakeTokenIssuer{})

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRegisterRejectsBlankName(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), fakeTokenIssuer{})

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "staff@example.com",
		Password: "supersecret",
		FullName: strings.Repeat(" ", 3),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
