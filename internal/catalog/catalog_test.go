package catalog

import (
	"strings"
	"testing"
)

func intPtr(n int) *int { return &n }

func TestStore_ListKeepsSeedOrder(t *testing.T) {
	s := NewStore()

	all := s.List()
	if len(all) != 18 {
		t.Fatalf("seeded %d products, want 18", len(all))
	}
	if all[0].ID != "p01" || all[11].ID != "p12" || all[17].ID != "esp-03" {
		t.Fatalf("seed order broken: %s ... %s", all[0].ID, all[17].ID)
	}
}

func TestStore_Get(t *testing.T) {
	s := NewStore()

	p, err := s.Get("p05")
	if err != nil {
		t.Fatalf("get p05: %v", err)
	}
	if p.Price != 12490 || p.Category != "tinto" {
		t.Fatalf("p05 = %+v", p)
	}

	if _, err := s.Get("p99"); err != ErrNotFound {
		t.Fatalf("get p99: got %v, want ErrNotFound", err)
	}
}

func TestStore_Search_EmptyFilterReturnsAll(t *testing.T) {
	s := NewStore()

	got := s.Search(Filter{})
	all := s.List()
	if len(got) != len(all) {
		t.Fatalf("empty filter returned %d, want %d", len(got), len(all))
	}
	for i := range got {
		if got[i].ID != all[i].ID {
			t.Fatalf("order changed at %d: %s vs %s", i, got[i].ID, all[i].ID)
		}
	}
}

func TestStore_Search_TintoUnderPrice(t *testing.T) {
	s := NewStore()

	got := s.Search(Filter{Category: "tinto", MaxPrice: intPtr(12490)})

	want := []string{"p01", "p03", "p05"}
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("result[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestStore_Search_Criteria(t *testing.T) {
	s := NewStore()

	cases := []struct {
		name   string
		filter Filter
		check  func(Product) bool
	}{
		{"category case-insensitive", Filter{Category: "TINTO"}, func(p Product) bool {
			return p.Category == "tinto"
		}},
		{"varietal substring", Filter{Varietal: "sauvignon"}, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Varietal), "sauvignon")
		}},
		{"origin substring", Filter{Origin: "casablanca"}, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Origin), "casablanca")
		}},
		{"price range inclusive", Filter{MinPrice: intPtr(8990), MaxPrice: intPtr(9690)}, func(p Product) bool {
			return p.Price >= 8990 && p.Price <= 9690
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Search(tc.filter)
			if len(got) == 0 {
				t.Fatal("no results")
			}

			matched := map[string]bool{}
			for _, p := range got {
				if !tc.check(p) {
					t.Fatalf("%s does not satisfy the filter", p.ID)
				}
				matched[p.ID] = true
			}
			for _, p := range s.List() {
				if tc.check(p) && !matched[p.ID] {
					t.Fatalf("%s satisfies the filter but was excluded", p.ID)
				}
			}
		})
	}
}

func TestStore_Search_CombinedCriteriaAreANDed(t *testing.T) {
	s := NewStore()

	got := s.Search(Filter{Category: "espumante", Origin: "casablanca"})
	want := []string{"esp-02", "esp-03"}
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("result[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestStore_Locations(t *testing.T) {
	s := NewStore()

	if got := s.Locations(""); len(got) != 3 {
		t.Fatalf("all locations = %d, want 3", len(got))
	}

	got := s.Locations("las condes")
	if len(got) != 1 || got[0].ID != "st-lascondes" {
		t.Fatalf("comuna filter = %+v", got)
	}

	if got := s.Locations("Valparaíso"); len(got) != 0 {
		t.Fatalf("unknown comuna returned %d", len(got))
	}
}

func TestStore_Offers(t *testing.T) {
	s := NewStore()

	offers := s.Offers()
	if len(offers) != 4 {
		t.Fatalf("offers = %d, want 4", len(offers))
	}
	if offers[1].ID != "of-02" || !offers[1].ClubOnly {
		t.Fatalf("of-02 = %+v", offers[1])
	}
}
