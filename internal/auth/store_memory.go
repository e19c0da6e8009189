package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type MemStore struct {
	mu      sync.RWMutex
	hasher  Hasher
	byEmail map[string]User
}

func NewMemStore(hasher Hasher) *MemStore {
	return &MemStore{
		hasher:  hasher,
		byEmail: make(map[string]User),
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Create(ctx context.Context, email, name, password string) (User, error) {
	key := normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[key]; ok {
		return User{}, ErrEmailTaken
	}

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
	s.byEmail[key] = u
	return u, nil
}

func (s *MemStore) Authenticate(ctx context.Context, email, password string) (User, error) {
	s.mu.RLock()
	u, ok := s.byEmail[normalizeEmail(email)]
	s.mu.RUnlock()

	if !ok {
		return User{}, ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, u.Digest) {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}

func (s *MemStore) FindByEmail(ctx context.Context, email string) (User, bool, error) {
	s.mu.RLock()
	u, ok := s.byEmail[normalizeEmail(email)]
	s.mu.RUnlock()

	return u, ok, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
