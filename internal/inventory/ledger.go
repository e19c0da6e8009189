package inventory

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrNotFound          = errors.New("stock entry not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Entry struct {
	Name  string `json:"nombre"`
	Stock int    `json:"stock"`
}

// Ledger tracks remaining units per named product. Reserve holds the mutex
// across the balance check and the decrement, so concurrent callers cannot
// oversell.
type Ledger struct {
	mu      sync.Mutex
	entries []Entry
}

func NewLedger() *Ledger {
	return &Ledger{
		entries: []Entry{
			{Name: "Cabernet Sauvignon Reserva", Stock: 3},
		},
	}
}

// Reserve decrements the named counter by qty and returns the remaining
// balance. The name matches case-insensitively.
func (l *Ledger) Reserve(name string, qty int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if !strings.EqualFold(l.entries[i].Name, name) {
			continue
		}
		if l.entries[i].Stock < qty {
			return l.entries[i].Stock, ErrInsufficientStock
		}
		l.entries[i].Stock -= qty
		return l.entries[i].Stock, nil
	}

	return 0, ErrNotFound
}

// Balance reports the remaining units for a name, for tests and probes.
func (l *Ledger) Balance(name string) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range l.entries {
		if strings.EqualFold(e.Name, name) {
			return e.Stock, true
		}
	}
	return 0, false
}
