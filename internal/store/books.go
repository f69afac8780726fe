package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/oseayemenre/readinglist/internal/models"
)

var bookColumns = []any{"id", "name", "num_of_pages"}

func (s *PostgresStore) CreateBook(ctx context.Context, name string, pages int) (*models.Book, error) {
	query, args, err := dialect.Insert("books").Prepared(true).
		Rows(goqu.Record{"name": name, "num_of_pages": pages}).
		Returning(bookColumns...).
		ToSQL()

	if err != nil {
		return nil, fmt.Errorf("error building insert book query: %v", err)
	}

	var book models.Book

	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&book.Id, &book.Name, &book.NumOfPages); err != nil {
		if pqCode(err) == pqUniqueViolation {
			return nil, ErrBookNameTaken
		}
		return nil, fmt.Errorf("error inserting into books table: %v", err)
	}

	return &book, nil
}

func (s *PostgresStore) getBook(ctx context.Context, where exp.Expression) (*models.Book, error) {
	query, args, err := dialect.From("books").Prepared(true).
		Select(bookColumns...).
		Where(where).
		ToSQL()

	if err != nil {
		return nil, fmt.Errorf("error building book query: %v", err)
	}

	var book models.Book

	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&book.Id, &book.Name, &book.NumOfPages); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("error getting book: %v", err)
	}

	return &book, nil
}

func (s *PostgresStore) GetBookById(ctx context.Context, id int64) (*models.Book, error) {
	return s.getBook(ctx, goqu.C("id").Eq(id))
}

func (s *PostgresStore) GetBookByName(ctx context.Context, name string) (*models.Book, error) {
	return s.getBook(ctx, goqu.C("name").Eq(name))
}

func (s *PostgresStore) GetBooksByIds(ctx context.Context, ids []int64) ([]models.Book, error) {
	if len(ids) == 0 {
		return []models.Book{}, nil
	}

	return s.listBooks(ctx, dialect.From("books").Where(goqu.C("id").In(ids)))
}

func (s *PostgresStore) ListBooks(ctx context.Context, offset int, limit int) ([]models.Book, error) {
	if offset < 0 || limit < 1 {
		return []models.Book{}, nil
	}

	return s.listBooks(ctx, dialect.From("books").Offset(uint(offset)).Limit(uint(limit)))
}

func (s *PostgresStore) listBooks(ctx context.Context, ds *goqu.SelectDataset) ([]models.Book, error) {
	query, args, err := ds.Prepared(true).Select(bookColumns...).Order(goqu.C("id").Asc()).ToSQL()

	if err != nil {
		return nil, fmt.Errorf("error building list books query: %v", err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)

	if err != nil {
		return nil, fmt.Errorf("error listing books: %v", err)
	}

	defer rows.Close()

	books := []models.Book{}

	for rows.Next() {
		var book models.Book

		if err := rows.Scan(&book.Id, &book.Name, &book.NumOfPages); err != nil {
			return nil, fmt.Errorf("error scanning book: %v", err)
		}

		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %v", err)
	}

	return books, nil
}

func (s *PostgresStore) CountBooks(ctx context.Context) (int, error) {
	query, args, err := dialect.From("books").Prepared(true).Select(goqu.COUNT("*")).ToSQL()

	if err != nil {
		return 0, fmt.Errorf("error building count query: %v", err)
	}

	var count int

	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting books: %v", err)
	}

	return count, nil
}

func (s *PostgresStore) UpdateBook(ctx context.Context, id int64, upd models.BookUpdate) (*models.Book, error) {
	var book models.Book

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := dialect.From("books").Prepared(true).
			Select("num_of_pages").
			Where(goqu.C("id").Eq(id)).
			ForUpdate(exp.Wait).
			ToSQL()

		if err != nil {
			return fmt.Errorf("error building lock book query: %v", err)
		}

		var oldPages int

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&oldPages); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrBookNotFound
			}
			return fmt.Errorf("error locking book: %v", err)
		}

		record := goqu.Record{}

		if upd.Name != nil {
			record["name"] = *upd.Name
		}

		if upd.Pages != nil {
			conflicts, err := queryIntervals(ctx, tx, pageCountConflictQuery(id, *upd.Pages, oldPages))

			if err != nil {
				return err
			}

			if len(conflicts) > 0 {
				return ErrPageCountConflict
			}

			record["num_of_pages"] = *upd.Pages
		}

		if len(record) == 0 {
			query, args, err = dialect.From("books").Prepared(true).Select(bookColumns...).Where(goqu.C("id").Eq(id)).ToSQL()
		} else {
			query, args, err = dialect.Update("books").Prepared(true).
				Set(record).
				Where(goqu.C("id").Eq(id)).
				Returning(bookColumns...).
				ToSQL()
		}

		if err != nil {
			return fmt.Errorf("error building update book query: %v", err)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&book.Id, &book.Name, &book.NumOfPages); err != nil {
			if pqCode(err) == pqUniqueViolation {
				return ErrBookNameTaken
			}
			return fmt.Errorf("error updating book: %v", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &book, nil
}

func (s *PostgresStore) DeleteBook(ctx context.Context, id int64) error {
	query, args, err := dialect.Delete("books").Prepared(true).Where(goqu.C("id").Eq(id)).ToSQL()

	if err != nil {
		return fmt.Errorf("error building delete book query: %v", err)
	}

	res, err := s.DB.ExecContext(ctx, query, args...)

	if err != nil {
		if pqCode(err) == pqForeignKeyViolation {
			return ErrBookInUse
		}
		return fmt.Errorf("error deleting book: %v", err)
	}

	n, err := res.RowsAffected()

	if err != nil {
		return fmt.Errorf("error reading affected rows: %v", err)
	}

	if n == 0 {
		return ErrBookNotFound
	}

	return nil
}
