// Package catalog holds the read-only country reference table and the
// normalized-name index every game mode resolves guesses against.
package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/playperu/marcopolo/internal/marcopolo"
	"github.com/playperu/marcopolo/internal/textnorm"
)

// Continent names as displayed to players.
const (
	Africa       = "África"
	Asia         = "Asia"
	Europe       = "Europa"
	NorthAmerica = "América del Norte"
	SouthAmerica = "América del Sur"
	Oceania      = "Oceanía"
)

// minSuggestionRunes is the shortest input that produces suggestions.
const minSuggestionRunes = 2

type Catalog struct {
	entries []marcopolo.Country
	byName  map[string]int
	byCode  map[string]int
}

// New builds a catalog over entries. It fails if two entries share a
// normalized name or an ISO code.
func New(entries []marcopolo.Country) (*Catalog, error) {
	c := &Catalog{
		entries: make([]marcopolo.Country, len(entries)),
		byName:  make(map[string]int, len(entries)),
		byCode:  make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)

	for i, e := range c.entries {
		key := textnorm.Normalize(e.Name)
		if key == "" {
			return nil, fmt.Errorf("entry %d has an empty name", i)
		}
		if j, ok := c.byName[key]; ok {
			return nil, fmt.Errorf("%q collides with %q", e.Name, c.entries[j].Name)
		}
		c.byName[key] = i

		code := strings.ToLower(e.Code)
		if j, ok := c.byCode[code]; ok {
			return nil, fmt.Errorf("code %q used by %q and %q", e.Code, c.entries[j].Name, e.Name)
		}
		c.byCode[code] = i
	}
	return c, nil
}

// Default returns the catalog built from the embedded reference table.
func Default() *Catalog {
	c, err := New(countries)
	if err != nil {
		panic("catalog: invalid reference table: " + err.Error())
	}
	return c
}

func (c *Catalog) Len() int { return len(c.entries) }

// All returns the countries in catalog order. The slice is a copy.
func (c *Catalog) All() []marcopolo.Country {
	out := make([]marcopolo.Country, len(c.entries))
	copy(out, c.entries)
	return out
}

// At returns the i-th country in catalog order.
func (c *Catalog) At(i int) marcopolo.Country { return c.entries[i] }

// FindByName resolves typed text to a country by exact normalized match.
func (c *Catalog) FindByName(text string) (marcopolo.Country, error) {
	i, ok := c.byName[textnorm.Normalize(strings.TrimSpace(text))]
	if !ok {
		return marcopolo.Country{}, fmt.Errorf("%w: %q", marcopolo.ErrUnknownCountry, text)
	}
	return c.entries[i], nil
}

// FindByCode resolves an ISO code, case-insensitively.
func (c *Catalog) FindByCode(code string) (marcopolo.Country, error) {
	i, ok := c.byCode[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return marcopolo.Country{}, fmt.Errorf("%w: code %q", marcopolo.ErrUnknownCountry, code)
	}
	return c.entries[i], nil
}

// Key returns the normalized name used as the identity of a country.
func Key(country marcopolo.Country) string {
	return textnorm.Normalize(country.Name)
}

// Suggestions returns, in catalog order, every country whose normalized name
// contains the normalized prefix and whose key is not in excluded. Inputs of
// one character or less never produce suggestions.
func (c *Catalog) Suggestions(prefix string, excluded map[string]struct{}) []marcopolo.Country {
	if utf8.RuneCountInString(prefix) < minSuggestionRunes {
		return nil
	}
	needle := textnorm.Normalize(prefix)

	var out []marcopolo.Country
	for _, e := range c.entries {
		key := textnorm.Normalize(e.Name)
		if _, skip := excluded[key]; skip {
			continue
		}
		if strings.Contains(key, needle) {
			out = append(out, e)
		}
	}
	return out
}
