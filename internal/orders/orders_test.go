package orders

import (
	"regexp"
	"testing"
)

var trackingRe = regexp.MustCompile(`^TRK-\d{4}$`)

func TestStore_Create(t *testing.T) {
	s := NewStore()

	o := s.Create("ana@example.com")
	if o.User != "ana@example.com" {
		t.Fatalf("user = %q", o.User)
	}
	if o.Status != "Preparing" {
		t.Fatalf("initial status = %q", o.Status)
	}
	if !trackingRe.MatchString(o.Tracking) {
		t.Fatalf("tracking = %q", o.Tracking)
	}
}

func TestStore_TrackUnknown(t *testing.T) {
	s := NewStore()

	if _, err := s.Track("o_missing"); err != ErrNotFound {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

// Track re-rolls the status on every call; the only guarantee is membership
// in the four-state set.
func TestStore_TrackDrawsFromStatusSet(t *testing.T) {
	s := NewStore()
	o := s.Create("ana@example.com")

	valid := map[string]bool{
		"Preparing": true, "Dispatched": true, "In Transit": true, "Delivered": true,
	}

	for i := 0; i < 50; i++ {
		got, err := s.Track(o.ID)
		if err != nil {
			t.Fatalf("track: %v", err)
		}
		if !valid[got.Status] {
			t.Fatalf("status %q outside the four-state set", got.Status)
		}
		if got.Tracking != o.Tracking {
			t.Fatalf("tracking changed: %q vs %q", got.Tracking, o.Tracking)
		}
	}
}
