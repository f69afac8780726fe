package service

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/oseayemenre/readinglist/internal/errors"
	"github.com/oseayemenre/readinglist/internal/models"
	"github.com/oseayemenre/readinglist/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("connection reset")

// failingStore lets a test break individual store calls.
type failingStore struct {
	*store.MemoryStore
	getBookByIdErr   error
	getBookByNameErr error
	sumPagesErr      error
	createUserErr    error
}

func (s *failingStore) GetBookById(ctx context.Context, id int64) (*models.Book, error) {
	if s.getBookByIdErr != nil {
		return nil, s.getBookByIdErr
	}
	return s.MemoryStore.GetBookById(ctx, id)
}

func (s *failingStore) GetBookByName(ctx context.Context, name string) (*models.Book, error) {
	if s.getBookByNameErr != nil {
		return nil, s.getBookByNameErr
	}
	return s.MemoryStore.GetBookByName(ctx, name)
}

func (s *failingStore) SumPagesByBook(ctx context.Context) ([]models.BookPageSums, error) {
	if s.sumPagesErr != nil {
		return nil, s.sumPagesErr
	}
	return s.MemoryStore.SumPagesByBook(ctx)
}

func (s *failingStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if s.createUserErr != nil {
		return nil, s.createUserErr
	}
	return s.MemoryStore.CreateUser(ctx, user)
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func assertAppError(t *testing.T, err error, code apperrors.Code, msg string) {
	t.Helper()

	var appErr *apperrors.Error
	require.True(t, apperrors.As(err, &appErr), "expected *errors.Error, got %v", err)
	assert.Equal(t, code, appErr.Code)
	if msg != "" {
		assert.Equal(t, msg, appErr.Message)
	}
}

func seedUser(t *testing.T, s store.Store, username string) int64 {
	t.Helper()

	u, err := s.CreateUser(context.Background(), &models.User{Username: username, Name: username, Password: "hash", Role: models.RoleUser})
	require.NoError(t, err)
	return u.Id
}
