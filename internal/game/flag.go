package game

import (
	"github.com/playperu/marcopolo/internal/catalog"
	"github.com/playperu/marcopolo/internal/marcopolo"
)

// FlagRounds is the number of flags shown per session.
const FlagRounds = 10

// FlagGame shows one flag per round for a fixed number of rounds. A correct
// guess holds the round on screen for RoundDelay before the next starts.
type FlagGame struct {
	base
	rounds []*marcopolo.Round
	used   map[string]struct{} // targets of earlier rounds
	seen   map[string]struct{} // attempts in the current round
}

func NewFlag(deps Deps) *FlagGame {
	g := &FlagGame{
		base: newBase(marcopolo.ModeFlag, deps),
		used: make(map[string]struct{}),
	}
	g.startRound(1)
	return g
}

func (g *FlagGame) current() *marcopolo.Round { return g.rounds[len(g.rounds)-1] }

// Target is the country of the round in play.
func (g *FlagGame) Target() marcopolo.Country { return g.current().Country }

// RoundNumber is the 1-based number of the round in play.
func (g *FlagGame) RoundNumber() int { return g.current().Number }

func (g *FlagGame) startRound(n int) {
	target := g.pickTarget()
	g.used[catalog.Key(target)] = struct{}{}
	g.seen = make(map[string]struct{})
	g.rounds = append(g.rounds, &marcopolo.Round{Number: n, Country: target})
	g.status = marcopolo.StatusPlaying
	g.deps.Notify(Event{Type: EventRoundStarted, Round: n, Status: g.status})
}

// pickTarget draws uniformly among countries not yet used as a target,
// falling back to the whole catalog once every entry has been used.
func (g *FlagGame) pickTarget() marcopolo.Country {
	all := g.deps.Catalog.All()
	fresh := make([]marcopolo.Country, 0, len(all))
	for _, c := range all {
		if _, ok := g.used[catalog.Key(c)]; !ok {
			fresh = append(fresh, c)
		}
	}
	if len(fresh) == 0 {
		fresh = all
	}
	return fresh[g.deps.Pick(len(fresh))]
}

func (g *FlagGame) Submit(country marcopolo.Country) (Result, error) {
	if err := g.checkOpen(); err != nil {
		return Result{}, err
	}
	round := g.current()
	key := catalog.Key(country)
	if _, ok := g.seen[key]; ok {
		return Result{}, duplicate(country)
	}
	g.seen[key] = struct{}{}

	round.AttemptCount++
	g.keeper.RecordAttempt(nil)
	guess := marcopolo.Guess{Country: country, At: g.now()}

	if key != catalog.Key(round.Country) {
		round.Attempts = append(round.Attempts, country)
		return Result{Guess: guess, Status: g.status, Round: round.Number}, nil
	}

	round.Completed = true
	if round.HintUsed {
		g.keeper.RecordHint()
	}
	g.status = marcopolo.StatusRoundComplete
	target := round.Country
	g.deps.Notify(Event{Type: EventRoundComplete, Round: round.Number, Country: &target, Status: g.status})
	g.deps.Scheduler.AfterFunc(g.deps.RoundDelay, g.advance)

	return Result{Guess: guess, Correct: true, Status: g.status, Round: round.Number}, nil
}

// advance runs after the display delay of a completed round.
func (g *FlagGame) advance() {
	if g.status != marcopolo.StatusRoundComplete {
		return
	}
	n := g.current().Number
	if n < FlagRounds {
		g.startRound(n + 1)
		return
	}

	hardest := g.hardest()
	g.finish(&marcopolo.Winner{
		Name:     hardest.Country.Name,
		Code:     hardest.Country.Code,
		Attempts: hardest.AttemptCount,
	}, 0, marcopolo.StatusAllRoundsComplete)
}

// hardest returns the round with the most attempts, the earliest on ties.
func (g *FlagGame) hardest() *marcopolo.Round {
	best := g.rounds[0]
	for _, r := range g.rounds[1:] {
		if r.AttemptCount > best.AttemptCount {
			best = r
		}
	}
	return best
}

func (g *FlagGame) Hint() (marcopolo.Hint, error) {
	if err := g.checkOpen(); err != nil {
		return marcopolo.Hint{}, err
	}
	round := g.current()
	if err := g.hints.Allow(HintState{Failures: round.Failures(), Used: round.HintUsed}); err != nil {
		return marcopolo.Hint{}, err
	}
	round.HintUsed = true
	return g.hints.Reveal(round.Country), nil
}

func (g *FlagGame) GiveUp() error { return ErrUnsupported }

func (g *FlagGame) Excluded() map[string]struct{} { return copySet(g.seen) }

// Rounds returns copies of every round started so far.
func (g *FlagGame) Rounds() []marcopolo.Round {
	out := make([]marcopolo.Round, len(g.rounds))
	for i, r := range g.rounds {
		out[i] = copyRound(r)
	}
	return out
}

func (g *FlagGame) Snapshot() Snapshot {
	s := g.snapshot()
	cur := copyRound(g.current())
	s.Round = &cur
	s.TotalRounds = FlagRounds
	s.Rounds = g.Rounds()
	return s
}

func copyRound(r *marcopolo.Round) marcopolo.Round {
	c := *r
	c.Attempts = append([]marcopolo.Country(nil), r.Attempts...)
	return c
}
