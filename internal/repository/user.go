package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const userColumns = "id, name, email, password"

// UserRepository reads and writes the users table.
type UserRepository struct {
	db  DBTX
	log *zerolog.Logger
}

// NewUserRepository returns a UserRepository backed by db. db is usually the
// pool, but any DBTX works, including a transaction.
func NewUserRepository(db DBTX, log *zerolog.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByEmail returns the first user whose email matches, or (nil, nil).
//
// The comparison is LIKE, so '%' and '_' in email act as wildcards.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+`
		FROM users
		WHERE email LIKE $1
		LIMIT 1`,
		email,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error().Err(err).Str("operation", "find_user_by_email").Msg("query failed")
		return nil, fmt.Errorf("finding user by email: %w", err)
	}
	return user, nil
}

// FindByID returns the user with the given id, or (nil, nil).
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error().Err(err).Str("operation", "find_user_by_id").Int64("user_id", id).Msg("query failed")
		return nil, fmt.Errorf("finding user %d: %w", id, err)
	}
	return user, nil
}

// Create inserts a user and returns the stored row. Uniqueness of email is
// left to the users_email_key constraint.
func (r *UserRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	created, err := scanUser(r.db.QueryRow(ctx,
		`INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING `+userColumns,
		user.Name, user.Email, user.Password,
	))
	if err != nil {
		r.log.Error().Err(err).Str("operation", "create_user").Msg("insert failed")
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return created, nil
}
