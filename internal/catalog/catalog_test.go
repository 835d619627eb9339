package catalog_test

import (
	"errors"
	"testing"

	"github.com/playperu/marcopolo/internal/catalog"
	"github.com/playperu/marcopolo/internal/marcopolo"
)

func TestDefaultCatalog(t *testing.T) {
	c := catalog.Default()

	if c.Len() != 195 {
		t.Fatalf("Len() = %d, want 195", c.Len())
	}

	for _, country := range c.All() {
		if country.Code == "" || country.Capital == "" || country.Continent == "" {
			t.Errorf("incomplete entry: %+v", country)
		}
		if country.Latitude < -90 || country.Latitude > 90 || country.Longitude < -180 || country.Longitude > 180 {
			t.Errorf("out of range coordinates: %+v", country)
		}
	}
}

func TestNewRejectsCollisions(t *testing.T) {
	tests := []struct {
		name    string
		entries []marcopolo.Country
	}{
		{
			name: "normalized names collide",
			entries: []marcopolo.Country{
				{Name: "Perú", Code: "pe"},
				{Name: "peru", Code: "xp"},
			},
		},
		{
			name: "codes collide",
			entries: []marcopolo.Country{
				{Name: "Palaos", Code: "pw"},
				{Name: "Palau", Code: "PW"},
			},
		},
		{
			name:    "empty name",
			entries: []marcopolo.Country{{Name: "", Code: "zz"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := catalog.New(tt.entries); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestFindByName(t *testing.T) {
	c := catalog.Default()

	tests := []struct {
		in       string
		wantCode string
	}{
		{in: "España", wantCode: "es"},
		{in: "espana", wantCode: "es"},
		{in: "  MÉXICO ", wantCode: "mx"},
		{in: "francia", wantCode: "fr"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := c.FindByName(tt.in)
			if err != nil {
				t.Fatalf("FindByName(%q): %v", tt.in, err)
			}
			if got.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", got.Code, tt.wantCode)
			}
		})
	}

	if _, err := c.FindByName("Atlantis"); !errors.Is(err, marcopolo.ErrUnknownCountry) {
		t.Errorf("FindByName(Atlantis) err = %v, want ErrUnknownCountry", err)
	}
	if _, err := c.FindByName("espa"); !errors.Is(err, marcopolo.ErrUnknownCountry) {
		t.Errorf("partial name should not match, err = %v", err)
	}
}

func TestFindByCode(t *testing.T) {
	c := catalog.Default()
	got, err := c.FindByCode("FR")
	if err != nil {
		t.Fatalf("FindByCode: %v", err)
	}
	if got.Name != "Francia" {
		t.Errorf("name = %q, want Francia", got.Name)
	}
	if _, err := c.FindByCode("xx"); !errors.Is(err, marcopolo.ErrUnknownCountry) {
		t.Errorf("err = %v, want ErrUnknownCountry", err)
	}
}

func TestSuggestions(t *testing.T) {
	c := catalog.Default()

	if got := c.Suggestions("", nil); len(got) != 0 {
		t.Errorf("empty prefix gave %d suggestions", len(got))
	}
	if got := c.Suggestions("a", nil); len(got) != 0 {
		t.Errorf("single rune prefix gave %d suggestions", len(got))
	}
	if got := c.Suggestions("á", nil); len(got) != 0 {
		t.Errorf("single accented rune gave %d suggestions", len(got))
	}

	got := c.Suggestions("GUIN", nil)
	want := []string{"Guinea-Bisáu", "Guinea", "Guinea Ecuatorial", "Papúa Nueva Guinea"}
	if len(got) != len(want) {
		t.Fatalf("got %d suggestions %v, want %v", len(got), names(got), want)
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("suggestion %d = %q, want %q", i, got[i].Name, want[i])
		}
	}

	excluded := map[string]struct{}{catalog.Key(got[0]): {}}
	after := c.Suggestions("guin", excluded)
	if len(after) != len(want)-1 {
		t.Fatalf("excluded: got %v", names(after))
	}
	for _, s := range after {
		if s.Name == got[0].Name {
			t.Error("excluded country was suggested")
		}
	}

	if got := c.Suggestions("panama", nil); len(got) != 1 || got[0].Name != "Panamá" {
		t.Errorf("diacritic-insensitive lookup failed: %v", names(got))
	}
}

func TestAllIsACopy(t *testing.T) {
	c := catalog.Default()
	all := c.All()
	all[0].Name = "Mutated"

	if c.All()[0].Name == "Mutated" {
		t.Fatal("mutating All() result leaked into the catalog")
	}
	if _, err := c.FindByName("Mutated"); err == nil {
		t.Fatal("mutated name became resolvable")
	}
}

func names(cs []marcopolo.Country) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}
