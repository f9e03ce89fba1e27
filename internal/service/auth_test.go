package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campuslink/backend/internal/domain"
	"github.com/campuslink/backend/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testJWT() *security.JWTManager {
	return security.NewJWTManager("test-secret-key-with-32-chars!!", 15*time.Minute, 7*24*time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password and issues tokens", func(t *testing.T) {
		users := new(MockUserStore)
		users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "alice@campus.edu" && u.PasswordHash != "hunter2secret" && u.ID != ""
		})).Return(nil).Once()

		svc := NewAuthService(users, testJWT())

		user, tokens, err := svc.Register(ctx, &domain.UserCreate{
			Name:     "Alice",
			Email:    "alice@campus.edu",
			Password: "hunter2secret",
		})
		assert.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2secret")))
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)

		users.AssertExpectations(t)
	})

	t.Run("invalid input", func(t *testing.T) {
		svc := NewAuthService(new(MockUserStore), testJWT())

		_, _, err := svc.Register(ctx, &domain.UserCreate{Name: "Alice", Email: "not-an-email", Password: "hunter2secret"})
		assert.True(t, errors.Is(err, domain.ErrValidation))

		_, _, err = svc.Register(ctx, &domain.UserCreate{Name: "Alice", Email: "alice@campus.edu", Password: "short"})
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("taken email", func(t *testing.T) {
		users := new(MockUserStore)
		users.On("Create", ctx, mock.Anything).Return(domain.ErrEmailTaken).Once()

		svc := NewAuthService(users, testJWT())

		_, _, err := svc.Register(ctx, &domain.UserCreate{
			Name: "Alice", Email: "alice@campus.edu", Password: "hunter2secret",
		})
		assert.True(t, errors.Is(err, domain.ErrEmailTaken))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2secret"), bcrypt.MinCost)
	stored := &domain.User{ID: "u1", Email: "alice@campus.edu", PasswordHash: string(hash)}

	t.Run("valid credentials", func(t *testing.T) {
		users := new(MockUserStore)
		users.On("GetByEmail", ctx, "alice@campus.edu").Return(stored, nil).Once()

		svc := NewAuthService(users, testJWT())

		user, tokens, err := svc.Login(ctx, &domain.UserLogin{Email: "alice@campus.edu", Password: "hunter2secret"})
		assert.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.NotEmpty(t, tokens.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(MockUserStore)
		users.On("GetByEmail", ctx, "alice@campus.edu").Return(stored, nil).Once()

		svc := NewAuthService(users, testJWT())

		_, _, err := svc.Login(ctx, &domain.UserLogin{Email: "alice@campus.edu", Password: "wrong"})
		assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
	})

	t.Run("unknown account is indistinguishable", func(t *testing.T) {
		users := new(MockUserStore)
		users.On("GetByEmail", ctx, "ghost@campus.edu").Return(nil, domain.ErrNotFound).Once()

		svc := NewAuthService(users, testJWT())

		_, _, err := svc.Login(ctx, &domain.UserLogin{Email: "ghost@campus.edu", Password: "whatever"})
		assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	jwt := testJWT()

	t.Run("valid refresh token", func(t *testing.T) {
		refresh, err := jwt.GenerateRefreshToken("u1")
		assert.NoError(t, err)

		users := new(MockUserStore)
		users.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", Email: "alice@campus.edu"}, nil).Once()

		svc := NewAuthService(users, jwt)

		tokens, err := svc.Refresh(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := NewAuthService(new(MockUserStore), jwt)

		_, err := svc.Refresh(ctx, "not-a-token")
		assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
	})

	t.Run("deleted account", func(t *testing.T) {
		refresh, _ := jwt.GenerateRefreshToken("gone")

		users := new(MockUserStore)
		users.On("GetByID", ctx, "gone").Return(nil, domain.ErrNotFound).Once()

		svc := NewAuthService(users, jwt)

		_, err := svc.Refresh(ctx, refresh)
		assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
	})
}
