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

var intervalColumns = []any{"id", "user_id", "book_id", "start_page", "end_page"}

func overlapQuery(userId, bookId int64, start, end int, excludeId int64) *goqu.SelectDataset {
	where := []exp.Expression{
		goqu.C("book_id").Eq(bookId),
		goqu.C("user_id").Eq(userId),
		goqu.C("start_page").Lte(end),
		goqu.C("end_page").Gte(start),
	}

	if excludeId != 0 {
		where = append(where, goqu.C("id").Neq(excludeId))
	}

	return dialect.From("reading_intervals").Prepared(true).
		Select(intervalColumns...).
		Where(goqu.And(where...)).
		Order(goqu.C("id").Asc())
}

func pageCountConflictQuery(bookId int64, pages, oldPages int) *goqu.SelectDataset {
	upper := pages + oldPages

	return dialect.From("reading_intervals").Prepared(true).
		Select(intervalColumns...).
		Where(
			goqu.C("book_id").Eq(bookId),
			goqu.Or(
				goqu.And(goqu.C("start_page").Lt(pages), goqu.C("end_page").Gt(pages)),
				goqu.And(goqu.C("start_page").Lt(upper), goqu.C("end_page").Gt(upper)),
				goqu.And(goqu.C("start_page").Gt(pages), goqu.C("end_page").Lt(upper)),
			),
		).
		Order(goqu.C("id").Asc())
}

func (s *PostgresStore) FindOverlappingIntervals(ctx context.Context, userId int64, bookId int64, start int, end int, excludeId int64) ([]models.ReadingInterval, error) {
	return queryIntervals(ctx, s.DB, overlapQuery(userId, bookId, start, end, excludeId))
}

func (s *PostgresStore) FindIntervalsConflictingWithPageCount(ctx context.Context, bookId int64, pages int, oldPages int) ([]models.ReadingInterval, error) {
	return queryIntervals(ctx, s.DB, pageCountConflictQuery(bookId, pages, oldPages))
}

func (s *PostgresStore) ListUserBookIntervals(ctx context.Context, userId int64, bookId int64) ([]models.ReadingInterval, error) {
	return queryIntervals(ctx, s.DB, dialect.From("reading_intervals").Prepared(true).
		Select(intervalColumns...).
		Where(goqu.Ex{"user_id": userId, "book_id": bookId}).
		Order(goqu.C("id").Asc()))
}

// CreateInterval holds a share lock on the book while inserting so a
// concurrent page count change cannot slip between the bounds check and the write.
func (s *PostgresStore) CreateInterval(ctx context.Context, interval *models.ReadingInterval) (*models.ReadingInterval, error) {
	var created models.ReadingInterval

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := dialect.From("books").Prepared(true).
			Select("num_of_pages").
			Where(goqu.C("id").Eq(interval.BookId)).
			ForShare(exp.Wait).
			ToSQL()

		if err != nil {
			return fmt.Errorf("error building lock book query: %v", err)
		}

		var pages int

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&pages); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrBookNotFound
			}
			return fmt.Errorf("error locking book: %v", err)
		}

		if interval.EndPage > pages {
			return ErrIntervalOutOfBounds
		}

		query, args, err = dialect.Insert("reading_intervals").Prepared(true).
			Rows(goqu.Record{
				"user_id":    interval.UserId,
				"book_id":    interval.BookId,
				"start_page": interval.StartPage,
				"end_page":   interval.EndPage,
			}).
			Returning(intervalColumns...).
			ToSQL()

		if err != nil {
			return fmt.Errorf("error building insert interval query: %v", err)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&created.Id, &created.UserId, &created.BookId, &created.StartPage, &created.EndPage); err != nil {
			if pqCode(err) == pqExclusionViolation {
				return ErrIntervalOverlap
			}
			return fmt.Errorf("error inserting into reading_intervals table: %v", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *PostgresStore) GetUserInterval(ctx context.Context, userId int64, id int64) (*models.IntervalWithBook, error) {
	query, args, err := userIntervalQuery(userId, id).ToSQL()

	if err != nil {
		return nil, fmt.Errorf("error building interval query: %v", err)
	}

	var ri models.IntervalWithBook

	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&ri.Id, &ri.UserId, &ri.BookId, &ri.StartPage, &ri.EndPage, &ri.NumOfPages); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrIntervalNotFound
		}
		return nil, fmt.Errorf("error getting reading interval: %v", err)
	}

	return &ri, nil
}

func userIntervalQuery(userId, id int64) *goqu.SelectDataset {
	return dialect.From(goqu.T("reading_intervals").As("ri")).Prepared(true).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("b.id").Eq(goqu.I("ri.book_id")))).
		Select("ri.id", "ri.user_id", "ri.book_id", "ri.start_page", "ri.end_page", "b.num_of_pages").
		Where(goqu.I("ri.id").Eq(id), goqu.I("ri.user_id").Eq(userId))
}

func (s *PostgresStore) UpdateInterval(ctx context.Context, userId int64, id int64, start int, end int) (*models.ReadingInterval, error) {
	var updated models.ReadingInterval

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := userIntervalQuery(userId, id).ForShare(exp.Wait, goqu.T("b")).ToSQL()

		if err != nil {
			return fmt.Errorf("error building interval query: %v", err)
		}

		var current models.IntervalWithBook

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&current.Id, &current.UserId, &current.BookId, &current.StartPage, &current.EndPage, &current.NumOfPages); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrIntervalNotFound
			}
			return fmt.Errorf("error getting reading interval: %v", err)
		}

		if end > current.NumOfPages {
			return ErrIntervalOutOfBounds
		}

		query, args, err = dialect.Update("reading_intervals").Prepared(true).
			Set(goqu.Record{"start_page": start, "end_page": end}).
			Where(goqu.Ex{"id": id, "user_id": userId}).
			Returning(intervalColumns...).
			ToSQL()

		if err != nil {
			return fmt.Errorf("error building update interval query: %v", err)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&updated.Id, &updated.UserId, &updated.BookId, &updated.StartPage, &updated.EndPage); err != nil {
			if pqCode(err) == pqExclusionViolation {
				return ErrIntervalOverlap
			}
			return fmt.Errorf("error updating reading interval: %v", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *PostgresStore) SumPagesByBook(ctx context.Context) ([]models.BookPageSums, error) {
	query, args, err := dialect.From("reading_intervals").Prepared(true).
		Select(
			goqu.C("book_id"),
			goqu.SUM("start_page").As("sum_start"),
			goqu.SUM("end_page").As("sum_end"),
		).
		GroupBy("book_id").
		Order(goqu.C("book_id").Asc()).
		ToSQL()

	if err != nil {
		return nil, fmt.Errorf("error building page sums query: %v", err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)

	if err != nil {
		return nil, fmt.Errorf("error summing pages: %v", err)
	}

	defer rows.Close()

	sums := []models.BookPageSums{}

	for rows.Next() {
		var sum models.BookPageSums

		if err := rows.Scan(&sum.BookId, &sum.SumStart, &sum.SumEnd); err != nil {
			return nil, fmt.Errorf("error scanning page sums: %v", err)
		}

		sums = append(sums, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating page sums: %v", err)
	}

	return sums, nil
}
