package game

import (
	"github.com/playperu/marcopolo/internal/catalog"
	"github.com/playperu/marcopolo/internal/geo"
	"github.com/playperu/marcopolo/internal/marcopolo"
)

// DistanceGame is won by naming the hidden target; every other guess reports
// how far it is from the target.
type DistanceGame struct {
	base
	target  marcopolo.Country
	guesses []marcopolo.Guess
	seen    map[string]struct{}
}

func NewDistance(deps Deps, target marcopolo.Country) *DistanceGame {
	return &DistanceGame{
		base:   newBase(marcopolo.ModeDistance, deps),
		target: target,
		seen:   make(map[string]struct{}),
	}
}

func (g *DistanceGame) Target() marcopolo.Country { return g.target }

func (g *DistanceGame) Submit(country marcopolo.Country) (Result, error) {
	if err := g.checkOpen(); err != nil {
		return Result{}, err
	}
	key := catalog.Key(country)
	if _, ok := g.seen[key]; ok {
		return Result{}, duplicate(country)
	}
	g.seen[key] = struct{}{}

	d := geo.DistanceKm(country.Latitude, country.Longitude, g.target.Latitude, g.target.Longitude)
	guess := marcopolo.Guess{Country: country, Distance: &d, At: g.now()}
	g.guesses = append(g.guesses, guess)
	g.keeper.RecordAttempt(&d)

	correct := d == 0 && key == catalog.Key(g.target)
	if correct {
		g.finish(&marcopolo.Winner{
			Name:     g.target.Name,
			Code:     g.target.Code,
			Attempts: len(g.guesses),
		}, 0, marcopolo.StatusWon)
	}
	return Result{Guess: guess, Correct: correct, Status: g.status}, nil
}

func (g *DistanceGame) Hint() (marcopolo.Hint, error) {
	if err := g.checkOpen(); err != nil {
		return marcopolo.Hint{}, err
	}
	if err := g.hints.Allow(HintState{}); err != nil {
		return marcopolo.Hint{}, err
	}
	return g.hints.Reveal(g.target), nil
}

func (g *DistanceGame) GiveUp() error { return ErrUnsupported }

func (g *DistanceGame) Excluded() map[string]struct{} { return copySet(g.seen) }

// Guesses returns the guesses in submission order.
func (g *DistanceGame) Guesses() []marcopolo.Guess {
	out := make([]marcopolo.Guess, len(g.guesses))
	copy(out, g.guesses)
	return out
}

func (g *DistanceGame) Snapshot() Snapshot {
	s := g.snapshot()
	s.Guesses = g.Guesses()
	return s
}
