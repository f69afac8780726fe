package service

import (
	"context"
	"errors"
	"time"

	"github.com/oseayemenre/readinglist/internal/bcrypt"
	apperrors "github.com/oseayemenre/readinglist/internal/errors"
	"github.com/oseayemenre/readinglist/internal/jwt"
	"github.com/oseayemenre/readinglist/internal/models"
	"github.com/oseayemenre/readinglist/internal/store"
)

const (
	msgUserExists         = "User already exists"
	msgUserNotFound       = "User not found"
	msgInvalidCredentials = "Invalid credentials"
)

type AuthService struct {
	store     store.UserStore
	secret    string
	expiresIn time.Duration
}

func NewAuthService(store store.UserStore, secret string, expiresIn time.Duration) *AuthService {
	return &AuthService{
		store:     store,
		secret:    secret,
		expiresIn: expiresIn,
	}
}

// Register creates a USER account and signs a token for it.
func (s *AuthService) Register(ctx context.Context, username, name, password string) (*models.HandleAuthResponse, error) {
	user, err := s.createUser(ctx, username, name, password, models.RoleUser)

	if err != nil {
		return nil, err
	}

	return s.respond(user)
}

// CreateAdmin creates an ADMIN account. Registration never hands out that role.
func (s *AuthService) CreateAdmin(ctx context.Context, username, name, password string) (*models.User, error) {
	return s.createUser(ctx, username, name, password, models.RoleAdmin)
}

func (s *AuthService) createUser(ctx context.Context, username, name, password, role string) (*models.User, error) {
	hash, err := bcrypt.HashPassword(password)

	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user, err := s.store.CreateUser(ctx, &models.User{
		Username: username,
		Name:     name,
		Password: hash,
		Role:     role,
	})

	if err != nil {
		if errors.Is(err, store.ErrUserExists) {
			return nil, apperrors.Conflict(msgUserExists)
		}
		return nil, apperrors.Internal(err)
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*models.HandleAuthResponse, error) {
	user, err := s.store.GetUserByUsername(ctx, username)

	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, apperrors.NotFound(msgUserNotFound)
		}
		return nil, apperrors.Internal(err)
	}

	if err := bcrypt.ComparePassword(password, user.Password); err != nil {
		return nil, apperrors.Unauthorized(msgInvalidCredentials)
	}

	return s.respond(user)
}

func (s *AuthService) respond(user *models.User) (*models.HandleAuthResponse, error) {
	token, err := jwt.CreateJWTToken(user.Id, user.Role, s.secret, s.expiresIn)

	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &models.HandleAuthResponse{
		Id:       user.Id,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
		Token:    token,
	}, nil
}
