package store

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/oseayemenre/readinglist/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// setupTestDb starts a throwaway Postgres, applies migrations and returns a
// function producing a freshly truncated store for each subtest.
func setupTestDb(t *testing.T) func(t *testing.T) Store {
	if os.Getenv("READINGLIST_INTEGRATION") != "1" {
		t.Skip("set READINGLIST_INTEGRATION=1 to run postgres tests")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("readinglist"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err, "failed to start postgres container")

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	conn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := NewPostgresStore(ctx, conn)
	require.NoError(t, err, "failed to connect to postgres")

	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(ctx, db.DB, "up"))

	version, err := Version(ctx, db.DB)
	require.NoError(t, err)
	require.EqualValues(t, 1, version)

	return func(t *testing.T) Store {
		_, err := db.ExecContext(ctx, "TRUNCATE reading_intervals, books, users RESTART IDENTITY CASCADE")
		require.NoError(t, err)
		return db
	}
}

func TestPostgresStore(t *testing.T) {
	newStore := setupTestDb(t)

	testStoreBehaviour(t, newStore)

	t.Run("exclusion constraint rejects concurrent overlapping inserts", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		user, err := s.CreateUser(ctx, &models.User{Username: "alice", Name: "Alice", Password: "hash", Role: models.RoleUser})
		require.NoError(t, err)

		book, err := s.CreateBook(ctx, "Dune", 100)
		require.NoError(t, err)

		var wg sync.WaitGroup
		errs := make([]error, 8)

		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = s.CreateInterval(ctx, &models.ReadingInterval{UserId: user.Id, BookId: book.Id, StartPage: 10 + i, EndPage: 20 + i})
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, ErrIntervalOverlap)
		}

		assert.Equal(t, 1, succeeded)
	})
}
