package service

import (
	"context"
	"errors"
	"sort"

	apperrors "github.com/oseayemenre/readinglist/internal/errors"
	"github.com/oseayemenre/readinglist/internal/models"
	"github.com/oseayemenre/readinglist/internal/store"
)

const TopBooksLimit = 5

const (
	msgOverlappingIntervals = "Overlapping reading intervals"
	msgInvalidPages         = "Invalid start or end page"
	msgStartAfterEnd        = "Start page cannot be greater than end page"
	msgIntervalNotFound     = "Reading interval not found"
)

// ReadingService records reading intervals and ranks books by pages read.
// It only reads books, never writes them.
type ReadingService struct {
	store store.Store
}

func NewReadingService(store store.Store) *ReadingService {
	return &ReadingService{store: store}
}

func validatePages(start, end, numOfPages int) error {
	if start > numOfPages || end > numOfPages {
		return apperrors.Conflict(msgInvalidPages)
	}

	if start > end {
		return apperrors.Conflict(msgStartAfterEnd)
	}

	return nil
}

func (s *ReadingService) checkOverlap(ctx context.Context, userId, bookId int64, start, end int, excludeId int64) error {
	overlapping, err := s.store.FindOverlappingIntervals(ctx, userId, bookId, start, end, excludeId)

	if err != nil {
		return apperrors.Internal(err)
	}

	if len(overlapping) > 0 {
		return apperrors.Conflict(msgOverlappingIntervals)
	}

	return nil
}

// writeError maps store failures raised while persisting an interval.
func writeError(err error) error {
	switch {
	case errors.Is(err, store.ErrBookNotFound):
		return apperrors.Conflict(msgBookNotFound)
	case errors.Is(err, store.ErrIntervalNotFound):
		return apperrors.Conflict(msgIntervalNotFound)
	case errors.Is(err, store.ErrIntervalOverlap):
		return apperrors.Conflict(msgOverlappingIntervals)
	case errors.Is(err, store.ErrIntervalOutOfBounds):
		return apperrors.Conflict(msgInvalidPages)
	}
	return apperrors.Internal(err)
}

// CreateInterval records [start, end] of bookId for userId. A missing book is
// reported as a conflict.
func (s *ReadingService) CreateInterval(ctx context.Context, userId, bookId int64, start, end int) (*models.ReadingInterval, error) {
	book, err := s.store.GetBookById(ctx, bookId)

	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return nil, apperrors.Conflict(msgBookNotFound)
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.checkOverlap(ctx, userId, bookId, start, end, 0); err != nil {
		return nil, err
	}

	if err := validatePages(start, end, book.NumOfPages); err != nil {
		return nil, err
	}

	interval, err := s.store.CreateInterval(ctx, &models.ReadingInterval{
		UserId:    userId,
		BookId:    bookId,
		StartPage: start,
		EndPage:   end,
	})

	if err != nil {
		return nil, writeError(err)
	}

	return interval, nil
}

// UpdateInterval moves one of userId's own intervals. Intervals owned by
// other users are reported as not found.
func (s *ReadingService) UpdateInterval(ctx context.Context, userId, id int64, start, end int) (*models.ReadingInterval, error) {
	current, err := s.store.GetUserInterval(ctx, userId, id)

	if err != nil {
		if errors.Is(err, store.ErrIntervalNotFound) {
			return nil, apperrors.Conflict(msgIntervalNotFound)
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.checkOverlap(ctx, userId, current.BookId, start, end, id); err != nil {
		return nil, err
	}

	if err := validatePages(start, end, current.NumOfPages); err != nil {
		return nil, err
	}

	interval, err := s.store.UpdateInterval(ctx, userId, id, start, end)

	if err != nil {
		return nil, writeError(err)
	}

	return interval, nil
}

func (s *ReadingService) ListIntervals(ctx context.Context, userId, bookId int64) ([]models.ReadingInterval, error) {
	intervals, err := s.store.ListUserBookIntervals(ctx, userId, bookId)

	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return intervals, nil
}

// TopRecommendedBooks ranks books by sum(endPage) - sum(startPage) over all
// users' intervals, highest first, ties by ascending book id. Books without
// intervals never appear.
func (s *ReadingService) TopRecommendedBooks(ctx context.Context) ([]models.TopBook, error) {
	sums, err := s.store.SumPagesByBook(ctx)

	if err != nil {
		return nil, apperrors.Internal(err)
	}

	sort.SliceStable(sums, func(i, j int) bool {
		if sums[i].ReadPages() != sums[j].ReadPages() {
			return sums[i].ReadPages() > sums[j].ReadPages()
		}
		return sums[i].BookId < sums[j].BookId
	})

	if len(sums) > TopBooksLimit {
		sums = sums[:TopBooksLimit]
	}

	ids := make([]int64, len(sums))
	for i, sum := range sums {
		ids[i] = sum.BookId
	}

	books, err := s.store.GetBooksByIds(ctx, ids)

	if err != nil {
		return nil, apperrors.Internal(err)
	}

	byId := make(map[int64]models.Book, len(books))
	for _, b := range books {
		byId[b.Id] = b
	}

	top := make([]models.TopBook, 0, len(sums))

	for _, sum := range sums {
		book, ok := byId[sum.BookId]
		if !ok {
			continue
		}

		top = append(top, models.TopBook{
			Id:        book.Id,
			Name:      book.Name,
			Pages:     book.NumOfPages,
			ReadPages: sum.ReadPages(),
		})
	}

	return top, nil
}
