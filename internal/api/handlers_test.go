package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oseayemenre/readinglist/internal/config"
	"github.com/oseayemenre/readinglist/internal/jwt"
	"github.com/oseayemenre/readinglist/internal/models"
	"github.com/oseayemenre/readinglist/internal/ratelimit"
	"github.com/oseayemenre/readinglist/internal/service"
	"github.com/oseayemenre/readinglist/internal/store"
)

const testSecret = "secret"

type testLogger struct{}

func (l *testLogger) Info(msg string, args ...any)  {}
func (l *testLogger) Error(msg string, args ...any) {}
func (l *testLogger) Warn(msg string, args ...any)  {}

// testStore is an in-memory store whose calls can be overridden per test.
type testStore struct {
	*store.MemoryStore
	getBookByIdFunc    func(ctx context.Context, id int64) (*models.Book, error)
	listBooksFunc      func(ctx context.Context, offset int, limit int) ([]models.Book, error)
	sumPagesByBookFunc func(ctx context.Context) ([]models.BookPageSums, error)
}

func newTestStore() *testStore {
	return &testStore{MemoryStore: store.NewMemoryStore()}
}

func (s *testStore) GetBookById(ctx context.Context, id int64) (*models.Book, error) {
	if s.getBookByIdFunc != nil {
		return s.getBookByIdFunc(ctx, id)
	}
	return s.MemoryStore.GetBookById(ctx, id)
}

func (s *testStore) ListBooks(ctx context.Context, offset int, limit int) ([]models.Book, error) {
	if s.listBooksFunc != nil {
		return s.listBooksFunc(ctx, offset, limit)
	}
	return s.MemoryStore.ListBooks(ctx, offset, limit)
}

func (s *testStore) SumPagesByBook(ctx context.Context) ([]models.BookPageSums, error) {
	if s.sumPagesByBookFunc != nil {
		return s.sumPagesByBookFunc(ctx)
	}
	return s.MemoryStore.SumPagesByBook(ctx)
}

func newTestApi(s *testStore) *chi.Mux {
	cfg := &config.Config{Jwt_secret: testSecret, Jwt_expires_in: time.Hour}
	router := chi.NewRouter()

	New(
		router,
		&testLogger{},
		service.NewBookService(s),
		service.NewReadingService(s),
		service.NewAuthService(s, cfg.Jwt_secret, cfg.Jwt_expires_in),
		ratelimit.New(1000, 1000),
		cfg,
	).RegisterRoutes()

	return router
}

func tokenFor(t *testing.T, id int64, role string) string {
	t.Helper()

	token, err := jwt.CreateJWTToken(id, role, testSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("error marshalling body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var got T
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("error unmarshalling response %q: %v", w.Body.String(), err)
	}
	return got
}

func seedBook(t *testing.T, s *testStore, name string, pages int) *models.Book {
	t.Helper()

	book, err := s.MemoryStore.CreateBook(context.Background(), name, pages)
	if err != nil {
		t.Fatal(err)
	}
	return book
}

func seedUser(t *testing.T, s *testStore, username string) int64 {
	t.Helper()

	u, err := s.CreateUser(context.Background(), &models.User{Username: username, Name: username, Password: "hash", Role: models.RoleUser})
	if err != nil {
		t.Fatal(err)
	}
	return u.Id
}
