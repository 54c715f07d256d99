package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/model"
	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.UserStore = (*UserRepo)(nil)

// UserRepo is the SQLite implementation of the UserStore port interface.
type UserRepo struct {
	db *DB
}

// NewUserRepo creates a new UserRepo backed by the given DB.
func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new user and returns the stored record with its assigned ID.
func (r *UserRepo) Create(ctx context.Context, email string) (model.User, error) {
	const query = `INSERT INTO users (email) VALUES (?)`

	result, err := r.db.Writer.ExecContext(ctx, query, email)
	if err != nil {
		return model.User{}, fmt.Errorf("create user %q: %w", email, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.User{}, fmt.Errorf("create user %q: last insert id: %w", email, err)
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves a user by ID. Returns driven.ErrNotFound if no user exists.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (model.User, error) {
	const query = `SELECT id, email, created_at FROM users WHERE id = ?`
	return r.scanUser(r.db.Reader.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a user by email. Returns driven.ErrNotFound if no user exists.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	const query = `SELECT id, email, created_at FROM users WHERE email = ?`
	return r.scanUser(r.db.Reader.QueryRowContext(ctx, query, email))
}

func (r *UserRepo) scanUser(row *sql.Row) (model.User, error) {
	var user model.User
	var createdAt string

	err := row.Scan(&user.ID, &user.Email, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, driven.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("scan user: %w", err)
	}

	user.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return model.User{}, fmt.Errorf("parse created_at: %w", err)
	}

	return user, nil
}
