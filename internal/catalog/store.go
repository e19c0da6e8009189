package catalog

import (
	"errors"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("product not found")

// Product is a catalog entry, immutable after seeding. Wire field names
// follow the storefront contract.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"nombre"`
	Category string `json:"tipo"` // tinto, blanco, rosado, espumante
	Varietal string `json:"cepa"`
	Origin   string `json:"origen"`
	Price    int    `json:"precio"`
	Image    string `json:"imagen,omitempty"`
}

type Offer struct {
	ID        string `json:"id"`
	ProductID string `json:"producto_id"`
	Name      string `json:"nombre"`
	Category  string `json:"tipo"`
	Price     int    `json:"precio"`
	Original  int    `json:"original"`
	Discount  int    `json:"descuento"`
	ClubOnly  bool   `json:"club_only"`
	Image     string `json:"imagen,omitempty"`
}

type Location struct {
	ID       string   `json:"id"`
	Comuna   string   `json:"comuna"`
	Name     string   `json:"nombre"`
	Address  string   `json:"direccion"`
	Schedule string   `json:"horario"`
	Phone    string   `json:"telefono"`
	Services []string `json:"servicios"`
	Image    string   `json:"imagen,omitempty"`
	MapsURL  string   `json:"maps_url,omitempty"`
}

// Filter holds the optional catalog criteria. A product matches when every
// supplied criterion holds; absent criteria always pass.
type Filter struct {
	Category string
	Varietal string
	Origin   string
	MinPrice *int
	MaxPrice *int
}

func (f Filter) matches(p Product) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, p.Category) {
		return false
	}
	if f.Varietal != "" && !containsFold(p.Varietal, f.Varietal) {
		return false
	}
	if f.Origin != "" && !containsFold(p.Origin, f.Origin) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Store serves the seeded catalog. Products, offers and locations are
// read-only after construction, so reads take no lock; the mutex only guards
// against a hypothetical future mutation path.
type Store struct {
	mu        sync.RWMutex
	products  []Product
	offers    []Offer
	locations []Location
}

func NewStore() *Store {
	return &Store{
		products:  seedProducts(),
		offers:    seedOffers(),
		locations: seedLocations(),
	}
}

func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Get(id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// Search returns the products matching every supplied criterion, in catalog
// insertion order.
func (s *Store) Search(f Filter) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) Offers() []Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Offer, len(s.offers))
	copy(out, s.offers)
	return out
}

// Locations returns the physical stores, optionally narrowed to an exact
// case-insensitive comuna match.
func (s *Store) Locations(comuna string) []Location {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if comuna == "" {
		out := make([]Location, len(s.locations))
		copy(out, s.locations)
		return out
	}

	out := make([]Location, 0, len(s.locations))
	for _, l := range s.locations {
		if strings.EqualFold(l.Comuna, comuna) {
			out = append(out, l)
		}
	}
	return out
}
