package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/oseayemenre/readinglist/internal/models"
)

// MemoryStore keeps everything in maps behind a single lock. Every write
// re-checks the uniqueness and overlap rules the Postgres schema enforces.
type MemoryStore struct {
	mu        sync.RWMutex
	books     map[int64]models.Book
	intervals map[int64]models.ReadingInterval
	users     map[int64]models.User

	nextBookId     int64
	nextIntervalId int64
	nextUserId     int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		books:     make(map[int64]models.Book),
		intervals: make(map[int64]models.ReadingInterval),
		users:     make(map[int64]models.User),
	}
}

func (m *MemoryStore) CreateBook(ctx context.Context, name string, pages int) (*models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.bookByName(name); ok {
		return nil, ErrBookNameTaken
	}

	m.nextBookId++
	book := models.Book{Id: m.nextBookId, Name: name, NumOfPages: pages}
	m.books[book.Id] = book

	return &book, nil
}

func (m *MemoryStore) bookByName(name string) (models.Book, bool) {
	for _, b := range m.books {
		if b.Name == name {
			return b, true
		}
	}
	return models.Book{}, false
}

func (m *MemoryStore) GetBookById(ctx context.Context, id int64) (*models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	book, ok := m.books[id]
	if !ok {
		return nil, ErrBookNotFound
	}

	return &book, nil
}

func (m *MemoryStore) GetBookByName(ctx context.Context, name string) (*models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	book, ok := m.bookByName(name)
	if !ok {
		return nil, ErrBookNotFound
	}

	return &book, nil
}

func (m *MemoryStore) GetBooksByIds(ctx context.Context, ids []int64) ([]models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	books := []models.Book{}

	for _, id := range ids {
		if b, ok := m.books[id]; ok {
			books = append(books, b)
		}
	}

	sort.Slice(books, func(i, j int) bool { return books[i].Id < books[j].Id })

	return books, nil
}

func (m *MemoryStore) sortedBooks() []models.Book {
	books := make([]models.Book, 0, len(m.books))

	for _, b := range m.books {
		books = append(books, b)
	}

	sort.Slice(books, func(i, j int) bool { return books[i].Id < books[j].Id })

	return books
}

func (m *MemoryStore) ListBooks(ctx context.Context, offset int, limit int) ([]models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	books := m.sortedBooks()

	if offset < 0 || limit < 1 || offset >= len(books) {
		return []models.Book{}, nil
	}

	end := offset + limit
	if end > len(books) || end < offset {
		end = len(books)
	}

	return books[offset:end], nil
}

func (m *MemoryStore) CountBooks(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.books), nil
}

func (m *MemoryStore) UpdateBook(ctx context.Context, id int64, upd models.BookUpdate) (*models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	book, ok := m.books[id]
	if !ok {
		return nil, ErrBookNotFound
	}

	if upd.Name != nil {
		if other, ok := m.bookByName(*upd.Name); ok && other.Id != id {
			return nil, ErrBookNameTaken
		}
		book.Name = *upd.Name
	}

	if upd.Pages != nil {
		if len(m.pageCountConflicts(id, *upd.Pages, book.NumOfPages)) > 0 {
			return nil, ErrPageCountConflict
		}
		book.NumOfPages = *upd.Pages
	}

	m.books[id] = book

	return &book, nil
}

func (m *MemoryStore) DeleteBook(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.books[id]; !ok {
		return ErrBookNotFound
	}

	for _, ri := range m.intervals {
		if ri.BookId == id {
			return ErrBookInUse
		}
	}

	delete(m.books, id)

	return nil
}

// filterIntervals returns matching intervals ordered by id.
func (m *MemoryStore) filterIntervals(keep func(ri *models.ReadingInterval) bool) []models.ReadingInterval {
	intervals := []models.ReadingInterval{}

	for _, ri := range m.intervals {
		if keep(&ri) {
			intervals = append(intervals, ri)
		}
	}

	sort.Slice(intervals, func(i, j int) bool { return intervals[i].Id < intervals[j].Id })

	return intervals
}

func (m *MemoryStore) overlapping(userId, bookId int64, start, end int, excludeId int64) []models.ReadingInterval {
	return m.filterIntervals(func(ri *models.ReadingInterval) bool {
		return ri.UserId == userId && ri.BookId == bookId && ri.Id != excludeId && ri.Overlaps(start, end)
	})
}

func (m *MemoryStore) pageCountConflicts(bookId int64, pages, oldPages int) []models.ReadingInterval {
	return m.filterIntervals(func(ri *models.ReadingInterval) bool {
		return ri.BookId == bookId && ri.ConflictsWithPageCount(pages, oldPages)
	})
}

func (m *MemoryStore) FindOverlappingIntervals(ctx context.Context, userId int64, bookId int64, start int, end int, excludeId int64) ([]models.ReadingInterval, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.overlapping(userId, bookId, start, end, excludeId), nil
}

func (m *MemoryStore) FindIntervalsConflictingWithPageCount(ctx context.Context, bookId int64, pages int, oldPages int) ([]models.ReadingInterval, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.pageCountConflicts(bookId, pages, oldPages), nil
}

func (m *MemoryStore) ListUserBookIntervals(ctx context.Context, userId int64, bookId int64) ([]models.ReadingInterval, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.filterIntervals(func(ri *models.ReadingInterval) bool {
		return ri.UserId == userId && ri.BookId == bookId
	}), nil
}

func (m *MemoryStore) CreateInterval(ctx context.Context, interval *models.ReadingInterval) (*models.ReadingInterval, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	book, ok := m.books[interval.BookId]
	if !ok {
		return nil, ErrBookNotFound
	}

	if interval.EndPage > book.NumOfPages {
		return nil, ErrIntervalOutOfBounds
	}

	if len(m.overlapping(interval.UserId, interval.BookId, interval.StartPage, interval.EndPage, 0)) > 0 {
		return nil, ErrIntervalOverlap
	}

	m.nextIntervalId++
	created := *interval
	created.Id = m.nextIntervalId
	m.intervals[created.Id] = created

	return &created, nil
}

func (m *MemoryStore) GetUserInterval(ctx context.Context, userId int64, id int64) (*models.IntervalWithBook, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.userInterval(userId, id)
}

func (m *MemoryStore) userInterval(userId, id int64) (*models.IntervalWithBook, error) {
	ri, ok := m.intervals[id]
	if !ok || ri.UserId != userId {
		return nil, ErrIntervalNotFound
	}

	book, ok := m.books[ri.BookId]
	if !ok {
		return nil, ErrIntervalNotFound
	}

	return &models.IntervalWithBook{ReadingInterval: ri, NumOfPages: book.NumOfPages}, nil
}

func (m *MemoryStore) UpdateInterval(ctx context.Context, userId int64, id int64, start int, end int) (*models.ReadingInterval, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, err := m.userInterval(userId, id)
	if err != nil {
		return nil, err
	}

	if end > current.NumOfPages {
		return nil, ErrIntervalOutOfBounds
	}

	if len(m.overlapping(userId, current.BookId, start, end, id)) > 0 {
		return nil, ErrIntervalOverlap
	}

	updated := current.ReadingInterval
	updated.StartPage = start
	updated.EndPage = end
	m.intervals[id] = updated

	return &updated, nil
}

func (m *MemoryStore) SumPagesByBook(ctx context.Context) ([]models.BookPageSums, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byBook := make(map[int64]*models.BookPageSums)

	for _, ri := range m.intervals {
		sum, ok := byBook[ri.BookId]
		if !ok {
			sum = &models.BookPageSums{BookId: ri.BookId}
			byBook[ri.BookId] = sum
		}
		sum.SumStart += ri.StartPage
		sum.SumEnd += ri.EndPage
	}

	sums := make([]models.BookPageSums, 0, len(byBook))
	for _, s := range byBook {
		sums = append(sums, *s)
	}

	sort.Slice(sums, func(i, j int) bool { return sums[i].BookId < sums[j].BookId })

	return sums, nil
}

func (m *MemoryStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == user.Username {
			return nil, ErrUserExists
		}
	}

	m.nextUserId++
	created := *user
	created.Id = m.nextUserId
	created.Created_at = time.Now()
	m.users[created.Id] = created

	return &created, nil
}

func (m *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}

	return nil, ErrUserNotFound
}
