package service

import (
	"context"
	"errors"
	"math"

	apperrors "github.com/oseayemenre/readinglist/internal/errors"
	"github.com/oseayemenre/readinglist/internal/models"
	"github.com/oseayemenre/readinglist/internal/store"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPageSize   = 10
	DefaultPageNumber = 1
	MaxPageSize       = 100
)

const (
	msgBookExists        = "Book already exists"
	msgBookNameExists    = "Book name already exists"
	msgBookNotFound      = "Book not found"
	msgPageCountConflict = "New page count conflicts with existing reading intervals"
	msgBookInUse         = "Book has recorded reading intervals"
)

// BookService manages the book catalog.
type BookService struct {
	store store.Store
}

func NewBookService(store store.Store) *BookService {
	return &BookService{store: store}
}

func (s *BookService) CreateBook(ctx context.Context, name string, pages int) (*models.Book, error) {
	_, err := s.store.GetBookByName(ctx, name)

	switch {
	case err == nil:
		return nil, apperrors.Conflict(msgBookExists)
	case !errors.Is(err, store.ErrBookNotFound):
		return nil, apperrors.Internal(err)
	}

	book, err := s.store.CreateBook(ctx, name, pages)

	if err != nil {
		if errors.Is(err, store.ErrBookNameTaken) {
			return nil, apperrors.Conflict(msgBookExists)
		}
		return nil, apperrors.Internal(err)
	}

	return book, nil
}

// UpdateBook validates the whole update before writing. The existing book and
// any same-named book are loaded concurrently; a missing book always wins over
// the other conflicts.
func (s *BookService) UpdateBook(ctx context.Context, id int64, upd models.BookUpdate) (*models.Book, error) {
	var (
		existing *models.Book
		sameName *models.Book
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		book, err := s.store.GetBookById(gctx, id)
		if err != nil && !errors.Is(err, store.ErrBookNotFound) {
			return err
		}
		existing = book
		return nil
	})

	if upd.Name != nil {
		g.Go(func() error {
			book, err := s.store.GetBookByName(gctx, *upd.Name)
			if err != nil && !errors.Is(err, store.ErrBookNotFound) {
				return err
			}
			sameName = book
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, apperrors.Internal(err)
	}

	if existing == nil {
		return nil, apperrors.NotFound(msgBookNotFound)
	}

	if sameName != nil && sameName.Id != id {
		return nil, apperrors.Conflict(msgBookNameExists)
	}

	if upd.Pages != nil {
		conflicts, err := s.store.FindIntervalsConflictingWithPageCount(ctx, id, *upd.Pages, existing.NumOfPages)

		if err != nil {
			return nil, apperrors.Internal(err)
		}

		if len(conflicts) > 0 {
			return nil, apperrors.Conflict(msgPageCountConflict)
		}
	}

	book, err := s.store.UpdateBook(ctx, id, upd)

	if err != nil {
		switch {
		case errors.Is(err, store.ErrBookNotFound):
			return nil, apperrors.NotFound(msgBookNotFound)
		case errors.Is(err, store.ErrBookNameTaken):
			return nil, apperrors.Conflict(msgBookNameExists)
		case errors.Is(err, store.ErrPageCountConflict):
			return nil, apperrors.Conflict(msgPageCountConflict)
		}
		return nil, apperrors.Internal(err)
	}

	return book, nil
}

func (s *BookService) DeleteBook(ctx context.Context, id int64) error {
	if _, err := s.store.GetBookById(ctx, id); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return apperrors.NotFound(msgBookNotFound)
		}
		return apperrors.Internal(err)
	}

	if err := s.store.DeleteBook(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrBookNotFound):
			return apperrors.NotFound(msgBookNotFound)
		case errors.Is(err, store.ErrBookInUse):
			return apperrors.Conflict(msgBookInUse)
		}
		return apperrors.Internal(err)
	}

	return nil
}

// ListBooks returns one 1-indexed page of the catalog ordered by id.
// Page size and number below 1 fall back to the defaults and page size is
// capped at MaxPageSize. Pages whose offset does not fit an int are empty.
func (s *BookService) ListBooks(ctx context.Context, pageSize, pageNumber int) (*models.BooksPage, error) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	if pageNumber < 1 {
		pageNumber = DefaultPageNumber
	}

	offset := -1
	if pageNumber-1 <= math.MaxInt/pageSize {
		offset = (pageNumber - 1) * pageSize
	}

	var (
		books []models.Book
		total int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		if offset < 0 {
			books = []models.Book{}
			return nil
		}
		books, err = s.store.ListBooks(gctx, offset, pageSize)
		return err
	})

	g.Go(func() (err error) {
		total, err = s.store.CountBooks(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.Internal(err)
	}

	return &models.BooksPage{
		Books:       books,
		CurrentPage: pageNumber,
		TotalCount:  total,
	}, nil
}
