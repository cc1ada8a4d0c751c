package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaks.
const uniqueViolation = "23505"

// PostgresUserStore implements UserStore over a pgx connection pool.
type PostgresUserStore struct {
	pool *pgxpool.Pool
}

// NewPostgresUserStore creates a store over the given pool.
func NewPostgresUserStore(pool *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{pool: pool}
}

const userColumns = `id, email, password_hash, role, first_name, last_name, username,
	is_super_admin, visible_pages, custom_role, created_at, updated_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.FirstName, &u.LastName,
		&u.Username, &u.IsSuperAdmin, &u.VisiblePages, &u.CustomRole,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = lower($1)`, email)
	return scanUser(row)
}

func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (s *PostgresUserStore) Create(ctx context.Context, user *User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	row := s.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, role, first_name, last_name,
			username, is_super_admin, visible_pages, custom_role)
		VALUES ($1, lower($2), $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`,
		user.ID, user.Email, user.PasswordHash, user.Role, user.FirstName,
		user.LastName, user.Username, user.IsSuperAdmin, user.VisiblePages,
		user.CustomRole,
	)

	if err := row.Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}
