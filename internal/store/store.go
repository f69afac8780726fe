package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"
	"github.com/oseayemenre/readinglist/internal/models"
)

var (
	ErrBookNotFound        = errors.New("book not found")
	ErrBookNameTaken       = errors.New("book name already taken")
	ErrBookInUse           = errors.New("book has recorded reading intervals")
	ErrPageCountConflict   = errors.New("page count conflicts with reading intervals")
	ErrIntervalNotFound    = errors.New("reading interval not found")
	ErrIntervalOverlap     = errors.New("reading interval overlaps an existing interval")
	ErrIntervalOutOfBounds = errors.New("reading interval exceeds book page count")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user already exists")
)

type BookStore interface {
	CreateBook(ctx context.Context, name string, pages int) (*models.Book, error)
	GetBookById(ctx context.Context, id int64) (*models.Book, error)
	GetBookByName(ctx context.Context, name string) (*models.Book, error)
	GetBooksByIds(ctx context.Context, ids []int64) ([]models.Book, error)
	// UpdateBook applies upd and, when the page count changes, fails with
	// ErrPageCountConflict if any interval of the book conflicts with it.
	UpdateBook(ctx context.Context, id int64, upd models.BookUpdate) (*models.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	ListBooks(ctx context.Context, offset int, limit int) ([]models.Book, error)
	CountBooks(ctx context.Context) (int, error)
}

type IntervalStore interface {
	// FindOverlappingIntervals returns the intervals of (userId, bookId) that
	// intersect [start, end]. excludeId is skipped when non-zero.
	FindOverlappingIntervals(ctx context.Context, userId int64, bookId int64, start int, end int, excludeId int64) ([]models.ReadingInterval, error)
	FindIntervalsConflictingWithPageCount(ctx context.Context, bookId int64, pages int, oldPages int) ([]models.ReadingInterval, error)
	CreateInterval(ctx context.Context, interval *models.ReadingInterval) (*models.ReadingInterval, error)
	GetUserInterval(ctx context.Context, userId int64, id int64) (*models.IntervalWithBook, error)
	UpdateInterval(ctx context.Context, userId int64, id int64, start int, end int) (*models.ReadingInterval, error)
	ListUserBookIntervals(ctx context.Context, userId int64, bookId int64) ([]models.ReadingInterval, error)
	SumPagesByBook(ctx context.Context) ([]models.BookPageSums, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type Store interface {
	BookStore
	IntervalStore
	UserStore
}

var dialect = goqu.Dialect("postgres")

type PostgresStore struct {
	*sql.DB
}

func NewPostgresStore(ctx context.Context, conn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", conn)

	if err != nil {
		return nil, fmt.Errorf("error connecting to db: %v", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error pinging db: %v", err)
	}

	return &PostgresStore{
		DB: db,
	}, nil
}

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqExclusionViolation  = "23P01"
)

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// withTx runs fn inside a transaction, rolling back when fn fails.
func (s *PostgresStore) withTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := s.DB.BeginTx(ctx, nil)

	if err != nil {
		return fmt.Errorf("error starting transaction: %v", err)
	}

	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %v", err)
	}

	return nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func queryIntervals(ctx context.Context, q queryer, ds *goqu.SelectDataset) ([]models.ReadingInterval, error) {
	query, args, err := ds.ToSQL()

	if err != nil {
		return nil, fmt.Errorf("error building interval query: %v", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)

	if err != nil {
		return nil, fmt.Errorf("error querying reading intervals: %v", err)
	}

	defer rows.Close()

	intervals := []models.ReadingInterval{}

	for rows.Next() {
		var ri models.ReadingInterval

		if err := rows.Scan(&ri.Id, &ri.UserId, &ri.BookId, &ri.StartPage, &ri.EndPage); err != nil {
			return nil, fmt.Errorf("error scanning reading interval: %v", err)
		}

		intervals = append(intervals, ri)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reading intervals: %v", err)
	}

	return intervals, nil
}
