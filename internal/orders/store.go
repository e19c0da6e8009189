// Package orders implements checkout intents and tracking. Tracking
// deliberately mirrors the original platform: every status query overwrites
// the order's status with an independent random draw from the four-state
// set, with no forward progression. A monotonic Preparing → Dispatched →
// In Transit → Delivered machine is the likely intent, but changing it would
// silently alter observable behavior; it stays a stakeholder decision.
package orders

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("order not found")

var statuses = []string{"Preparing", "Dispatched", "In Transit", "Delivered"}

type Order struct {
	ID       string `json:"id"`
	User     string `json:"usuario"`
	Status   string `json:"estado"`
	Tracking string `json:"tracking"`
}

type Store struct {
	mu     sync.Mutex
	orders []Order
}

func NewStore() *Store {
	return &Store{}
}

// Create opens an order for the user with a fresh tracking code.
func (s *Store) Create(userEmail string) Order {
	o := Order{
		ID:       "o_" + uuid.NewString(),
		User:     userEmail,
		Status:   statuses[0],
		Tracking: fmt.Sprintf("TRK-%04d", 1000+rand.IntN(9000)),
	}

	s.mu.Lock()
	s.orders = append(s.orders, o)
	s.mu.Unlock()

	return o
}

// Track re-rolls the order's status and returns the updated order.
func (s *Store) Track(id string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = statuses[rand.IntN(len(statuses))]
			return s.orders[i], nil
		}
	}
	return Order{}, ErrNotFound
}
