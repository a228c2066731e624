package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recipehub/backend/internal/domain/user"
	"github.com/recipehub/backend/internal/ports/outbound"
)

// UserRepository implements outbound.UserRepository.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository builds the repository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Insert persists a new account. The unique index on username surfaces as
// outbound.ErrDuplicateUsername.
func (r *UserRepository) Insert(ctx context.Context, u *user.User) (int64, error) {
	const query = `
		INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.pool.QueryRow(ctx, query, u.Username.Value(), u.Password.Value(), string(u.Role)).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, outbound.ErrDuplicateUsername
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// FindByID returns the account or (nil, nil) when absent.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	const query = `SELECT id, username, password, role FROM users WHERE id = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

// FindByUsername returns the account or (nil, nil) when absent.
func (r *UserRepository) FindByUsername(ctx context.Context, username user.Username) (*user.User, error) {
	const query = `SELECT id, username, password, role FROM users WHERE username = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, username.Value()))
}

// UpdatePassword replaces the stored hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hash user.PasswordHash) error {
	const query = `UPDATE users SET password = $2 WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, id, hash.Value()); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*user.User, error) {
	var (
		id          int64
		rawUsername string
		rawPassword string
		rawRole     string
	)
	if err := row.Scan(&id, &rawUsername, &rawPassword, &rawRole); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	username, err := user.NewUsername(rawUsername)
	if err != nil {
		return nil, fmt.Errorf("stored username %q: %w", rawUsername, err)
	}
	return &user.User{
		ID:       id,
		Username: username,
		Password: user.NewPasswordHash(rawPassword),
		Role:     user.ParseRole(rawRole),
	}, nil
}
