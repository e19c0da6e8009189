package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
	pgUniqueCode = "23505"
)

// PostgresStore is the durable alternative to MemStore, selected with
// USER_STORE=postgres. The default stays in memory so a restart clears all
// accounts, matching the documented process-lifetime contract.
type PostgresStore struct {
	db     *sql.DB
	hasher Hasher
}

func NewPostgresStore(db *sql.DB, hasher Hasher) *PostgresStore {
	return &PostgresStore{db: db, hasher: hasher}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) Create(ctx context.Context, email, name, password string) (User, error) {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:        "u_" + uuid.NewString(),
		Email:     strings.TrimSpace(email),
		Name:      strings.TrimSpace(name),
		Digest:    digest,
		CreatedAt: time.Now().UTC(),
	}

	err = withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO users (id, email, name, pass_digest, created_at)
			VALUES ($1, lower($2), $3, $4, $5)
		`, u.ID, u.Email, u.Name, u.Digest, u.CreatedAt)

		if err == nil {
			return nil
		}
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return err
	})
	if err != nil {
		return User{}, err
	}

	return u, nil
}

func (s *PostgresStore) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, ok, err := s.FindByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}
	if !ok || !s.hasher.Verify(password, u.Digest) {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (User, bool, error) {
	var u User

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT id, email, name, pass_digest, created_at
			FROM users
			WHERE email = lower($1)
		`, strings.TrimSpace(email)).Scan(&u.ID, &u.Email, &u.Name, &u.Digest, &u.CreatedAt)
	})

	if errors.Is(err, sql.ErrNoRows) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, err
	}
	return u, true, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueCode
}
