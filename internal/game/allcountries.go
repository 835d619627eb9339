package game

import (
	"github.com/playperu/marcopolo/internal/catalog"
	"github.com/playperu/marcopolo/internal/marcopolo"
)

// AllCountriesGame asks the player to name every country in the catalog
// against the clock.
type AllCountriesGame struct {
	base
	guessed []marcopolo.Guess
	seen    map[string]struct{}
	missing []marcopolo.Country
}

func NewAllCountries(deps Deps) *AllCountriesGame {
	return &AllCountriesGame{
		base: newBase(marcopolo.ModeAllCountries, deps),
		seen: make(map[string]struct{}),
	}
}

func (g *AllCountriesGame) Submit(country marcopolo.Country) (Result, error) {
	if err := g.checkOpen(); err != nil {
		return Result{}, err
	}
	key := catalog.Key(country)
	if _, ok := g.seen[key]; ok {
		return Result{}, duplicate(country)
	}
	g.seen[key] = struct{}{}

	guess := marcopolo.Guess{Country: country, At: g.now()}
	g.guessed = append(g.guessed, guess)

	if len(g.guessed) == g.deps.Catalog.Len() {
		g.finish(g.lastGuessed(), 0, marcopolo.StatusWon)
	}
	return Result{Guess: guess, Correct: true, Status: g.status}, nil
}

// Hint reveals the first letter of a random unguessed country. It costs a
// hint but no attempt, and does not guess the country.
func (g *AllCountriesGame) Hint() (marcopolo.Hint, error) {
	if err := g.checkOpen(); err != nil {
		return marcopolo.Hint{}, err
	}
	remaining := g.unguessed()
	if err := g.hints.Allow(HintState{Remaining: len(remaining)}); err != nil {
		return marcopolo.Hint{}, err
	}
	g.keeper.RecordHint()
	return g.hints.Reveal(remaining[g.deps.Pick(len(remaining))]), nil
}

// GiveUp ends the session as lost and records the countries left unnamed.
func (g *AllCountriesGame) GiveUp() error {
	if err := g.checkOpen(); err != nil {
		return err
	}
	g.missing = g.unguessed()
	g.finish(g.lastGuessed(), len(g.missing), marcopolo.StatusLost)
	return nil
}

func (g *AllCountriesGame) unguessed() []marcopolo.Country {
	var out []marcopolo.Country
	for _, c := range g.deps.Catalog.All() {
		if _, ok := g.seen[catalog.Key(c)]; !ok {
			out = append(out, c)
		}
	}
	return out
}

func (g *AllCountriesGame) lastGuessed() *marcopolo.Winner {
	if len(g.guessed) == 0 {
		return nil
	}
	last := g.guessed[len(g.guessed)-1].Country
	return &marcopolo.Winner{Name: last.Name, Code: last.Code}
}

func (g *AllCountriesGame) Excluded() map[string]struct{} { return copySet(g.seen) }

// Missing lists the countries left unnamed after a give-up, in catalog order.
func (g *AllCountriesGame) Missing() []marcopolo.Country {
	return append([]marcopolo.Country(nil), g.missing...)
}

func (g *AllCountriesGame) Snapshot() Snapshot {
	s := g.snapshot()
	s.Guesses = append([]marcopolo.Guess(nil), g.guessed...)
	s.Guessed = len(g.guessed)
	s.Missing = g.Missing()
	return s
}
