package service

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/oseayemenre/readinglist/internal/errors"
	"github.com/oseayemenre/readinglist/internal/jwt"
	"github.com/oseayemenre/readinglist/internal/models"
	"github.com/oseayemenre/readinglist/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secret"

func TestRegister(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	svc := NewAuthService(s, testSecret, time.Hour)

	res, err := svc.Register(ctx, "alice", "Alice", "password")
	require.NoError(t, err)

	assert.Equal(t, "alice", res.Username)
	assert.Equal(t, "Alice", res.Name)
	assert.Equal(t, models.RoleUser, res.Role)

	claims, err := jwt.DecodeJWTToken(res.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, res.Id, claims.Id)
	assert.Equal(t, models.RoleUser, claims.Role)

	stored, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "password", stored.Password)

	_, err = svc.Register(ctx, "alice", "Other", "password")
	assertAppError(t, err, apperrors.CodeConflict, "User already exists")
}

func TestRegisterStoreFailure(t *testing.T) {
	svc := NewAuthService(&failingStore{MemoryStore: store.NewMemoryStore(), createUserErr: errBoom}, testSecret, time.Hour)

	_, err := svc.Register(context.Background(), "alice", "Alice", "password")
	assertAppError(t, err, apperrors.CodeInternal, "")
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(store.NewMemoryStore(), testSecret, time.Hour)

	_, err := svc.CreateAdmin(ctx, "root", "Root", "password")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		code     apperrors.Code
		msg      string
	}{
		{name: "should return not found for an unknown user", username: "nobody", password: "password", code: apperrors.CodeNotFound, msg: "User not found"},
		{name: "should return unauthorized for a wrong password", username: "root", password: "wrong", code: apperrors.CodeUnauthorized, msg: "Invalid credentials"},
		{name: "should log in with valid credentials", username: "root", password: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Login(ctx, tt.username, tt.password)

			if tt.code != "" {
				assertAppError(t, err, tt.code, tt.msg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, models.RoleAdmin, res.Role)

			claims, err := jwt.DecodeJWTToken(res.Token, testSecret)
			require.NoError(t, err)
			assert.Equal(t, models.RoleAdmin, claims.Role)
		})
	}
}
