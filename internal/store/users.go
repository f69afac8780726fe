package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/oseayemenre/readinglist/internal/models"
)

var userColumns = []any{"id", "username", "name", "password", "role", "created_at"}

func (s *PostgresStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	query, args, err := dialect.Insert("users").Prepared(true).
		Rows(goqu.Record{
			"username": user.Username,
			"name":     user.Name,
			"password": user.Password,
			"role":     user.Role,
		}).
		Returning(userColumns...).
		ToSQL()

	if err != nil {
		return nil, fmt.Errorf("error building insert user query: %v", err)
	}

	var created models.User

	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&created.Id, &created.Username, &created.Name, &created.Password, &created.Role, &created.Created_at); err != nil {
		if pqCode(err) == pqUniqueViolation {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("error inserting into users table: %v", err)
	}

	return &created, nil
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query, args, err := dialect.From("users").Prepared(true).
		Select(userColumns...).
		Where(goqu.C("username").Eq(username)).
		ToSQL()

	if err != nil {
		return nil, fmt.Errorf("error building user query: %v", err)
	}

	var user models.User

	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&user.Id, &user.Username, &user.Name, &user.Password, &user.Role, &user.Created_at); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user: %v", err)
	}

	return &user, nil
}
