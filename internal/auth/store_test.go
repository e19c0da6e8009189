package auth

import (
	"context"
	"testing"
)

func TestMemStore_DuplicateEmailCaseInsensitive(t *testing.T) {
	s := NewMemStore(SHA256Hasher{})
	ctx := context.Background()

	if _, err := s.Create(ctx, "ana@example.com", "Ana", "secret123"); err != nil {
		t.Fatalf("first create: %v", err)
	}

	for _, variant := range []string{"ana@example.com", "ANA@example.com", "Ana@Example.Com"} {
		if _, err := s.Create(ctx, variant, "Ana", "secret123"); err != ErrEmailTaken {
			t.Fatalf("create %q: got %v, want ErrEmailTaken", variant, err)
		}
	}

	u, ok, err := s.FindByEmail(ctx, "ANA@EXAMPLE.COM")
	if err != nil || !ok {
		t.Fatalf("find: ok=%v err=%v", ok, err)
	}
	if u.Email != "ana@example.com" {
		t.Fatalf("stored email = %q", u.Email)
	}
}

func TestMemStore_Authenticate(t *testing.T) {
	s := NewMemStore(SHA256Hasher{})
	ctx := context.Background()

	created, err := s.Create(ctx, "benja@example.com", "Benja", "vino-tinto-2020")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	u, err := s.Authenticate(ctx, "Benja@Example.com", "vino-tinto-2020")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.ID != created.ID {
		t.Fatalf("got user %q, want %q", u.ID, created.ID)
	}

	cases := []struct {
		name, email, password string
	}{
		{"wrong password", "benja@example.com", "vino-tinto-2021"},
		{"one char off", "benja@example.com", "vino-tinto-2020 "},
		{"unknown email", "nadie@example.com", "vino-tinto-2020"},
		{"empty password", "benja@example.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Authenticate(ctx, tc.email, tc.password); err != ErrInvalidCredentials {
				t.Fatalf("got %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestHashers(t *testing.T) {
	for _, h := range []Hasher{SHA256Hasher{}, BcryptHasher{}} {
		digest, err := h.Hash("correcthorse")
		if err != nil {
			t.Fatalf("%T hash: %v", h, err)
		}
		if !h.Verify("correcthorse", digest) {
			t.Fatalf("%T rejected the right password", h)
		}
		if h.Verify("correcthorsf", digest) {
			t.Fatalf("%T accepted a wrong password", h)
		}
	}
}

func TestSHA256Hasher_Deterministic(t *testing.T) {
	h := SHA256Hasher{}

	a, _ := h.Hash("secret")
	b, _ := h.Hash("secret")
	if a != b {
		t.Fatalf("digests differ: %q vs %q", a, b)
	}
}
