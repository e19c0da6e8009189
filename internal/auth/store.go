package auth

import (
	"context"
	"errors"
	"time"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// User is a registered account. The password digest never leaves the process.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Digest    string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserStore holds registered users. Email is the unique key, matched
// case-insensitively.
type UserStore interface {
	Create(ctx context.Context, email, name, password string) (User, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, bool, error)
	Ping(ctx context.Context) error
}
