package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kaito/ideahub/internal/app/models"
	"github.com/kaito/ideahub/internal/app/models/dto"
	"github.com/kaito/ideahub/internal/pkg/apperrors"
	"github.com/kaito/ideahub/internal/pkg/auth"
)

func newAuthService(userRepo *mockUserRepo) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		TokenExpiration: time.Hour,
		TokenIssuer:     "ideahub.test",
	})
	return NewAuthService(userRepo, jwtService, zerolog.Nop())
}

func TestRegister(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := newAuthService(userRepo)

	userRepo.On("EmailExists", mock.Anything, "ada@example.com").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		u.ID = 7
		return u.Email == "ada@example.com" && u.Role == models.RoleUser && u.Password != "supersecret"
	})).Return(int64(7), nil)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Ada",
		Email:    "Ada@Example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, "ada@example.com", resp.User.Email)
}

func TestRegister_EmailTaken(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := newAuthService(userRepo)

	userRepo.On("EmailExists", mock.Anything, "ada@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	svc := newAuthService(new(mockUserRepo))

	tests := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{"blank name", dto.RegisterRequest{Name: " ", Email: "a@b.co", Password: "supersecret"}},
		{"bad email", dto.RegisterRequest{Name: "Ada", Email: "not-an-email", Password: "supersecret"}},
		{"short password", dto.RegisterRequest{Name: "Ada", Email: "a@b.co", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestLogin(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := newAuthService(userRepo)

	hashed, err := auth.HashPassword("supersecret")
	require.NoError(t, err)
	userRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(&models.User{
		ID:       7,
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: hashed,
		Role:     models.RoleUser,
	}, nil)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := newAuthService(userRepo)

	hashed, err := auth.HashPassword("supersecret")
	require.NoError(t, err)
	userRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(&models.User{
		ID: 7, Email: "ada@example.com", Password: hashed,
	}, nil)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := newAuthService(userRepo)

	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, apperrors.ErrUserNotFound)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever1",
	})
	// Unknown account and wrong password are indistinguishable.
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
