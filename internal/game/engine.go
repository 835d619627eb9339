// Package game implements the guess-evaluation state machines of the three
// MarcoPolo modes behind a single Engine interface.
//
// Engines are not safe for concurrent use; Session serializes every call and
// every delayed transition.
package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/playperu/marcopolo/internal/catalog"
	"github.com/playperu/marcopolo/internal/marcopolo"
)

// ErrUnsupported is returned for operations a mode does not offer.
var ErrUnsupported = errors.New("not supported in this mode")

// DefaultRoundDelay is how long a completed Flag round stays on screen.
const DefaultRoundDelay = 1500 * time.Millisecond

// Engine is one mode's state machine over catalog entries.
type Engine interface {
	Mode() marcopolo.Mode
	Status() marcopolo.Status
	Submit(country marcopolo.Country) (Result, error)
	Hint() (marcopolo.Hint, error)
	GiveUp() error
	// Excluded returns the normalized names that must not be suggested.
	Excluded() map[string]struct{}
	Snapshot() Snapshot
	Submission(player string) (marcopolo.HighscoreSubmission, error)
}

// Scheduler runs fn once after d. Implementations must drop fn if the
// session was reset in the meantime.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// Deps are the collaborators shared by every engine.
type Deps struct {
	Catalog    *catalog.Catalog
	Clock      clockwork.Clock
	Scheduler  Scheduler
	Notify     func(Event)
	RoundDelay time.Duration
	// Pick returns a uniform int in [0, n). Defaults to math/rand/v2.IntN.
	Pick func(n int) int
}

func (d Deps) withDefaults() Deps {
	if d.Clock == nil {
		d.Clock = clockwork.NewRealClock()
	}
	if d.Pick == nil {
		d.Pick = rand.IntN
	}
	if d.Notify == nil {
		d.Notify = func(Event) {}
	}
	if d.RoundDelay <= 0 {
		d.RoundDelay = DefaultRoundDelay
	}
	if d.Scheduler == nil {
		d.Scheduler = clockScheduler{d.Clock}
	}
	return d
}

// clockScheduler is the unguarded fallback used when an engine runs outside
// a Session.
type clockScheduler struct{ clock clockwork.Clock }

func (s clockScheduler) AfterFunc(d time.Duration, fn func()) { s.clock.AfterFunc(d, fn) }

type EventType string

const (
	EventRoundStarted  EventType = "round_started"
	EventRoundComplete EventType = "round_complete"
	EventFinished      EventType = "finished"
)

// Event is a transient notification for the UI.
type Event struct {
	Type    EventType          `json:"type"`
	Round   int                `json:"round,omitempty"`
	Country *marcopolo.Country `json:"country,omitempty"`
	Status  marcopolo.Status   `json:"status"`
}

// Result describes the outcome of one accepted guess.
type Result struct {
	Guess   marcopolo.Guess  `json:"guess"`
	Correct bool             `json:"correct"`
	Status  marcopolo.Status `json:"status"`
	Round   int              `json:"round,omitempty"`
}

// Snapshot is a read-only view of an engine.
type Snapshot struct {
	Mode           marcopolo.Mode      `json:"mode"`
	Status         marcopolo.Status    `json:"status"`
	StartedAt      time.Time           `json:"startedAt"`
	ElapsedSeconds int                 `json:"elapsedSeconds"`
	Guesses        []marcopolo.Guess   `json:"guesses"`
	Attempts       int                 `json:"attempts"`
	Hints          int                 `json:"hints"`
	TotalDistance  float64             `json:"totalDistance,omitempty"`
	Round          *marcopolo.Round    `json:"round,omitempty"`
	TotalRounds    int                 `json:"totalRounds,omitempty"`
	Rounds         []marcopolo.Round   `json:"rounds,omitempty"`
	Guessed        int                 `json:"guessed,omitempty"`
	CatalogSize    int                 `json:"catalogSize"`
	Missing        []marcopolo.Country `json:"missing,omitempty"`
	Winner         *marcopolo.Winner   `json:"winner,omitempty"`
}

// New starts an engine of the given mode with a randomly drawn target.
func New(mode marcopolo.Mode, deps Deps) (Engine, error) {
	if deps.Catalog == nil || deps.Catalog.Len() == 0 {
		return nil, errors.New("game: empty catalog")
	}
	switch mode {
	case marcopolo.ModeDistance:
		deps = deps.withDefaults()
		return NewDistance(deps, deps.Catalog.At(deps.Pick(deps.Catalog.Len()))), nil
	case marcopolo.ModeFlag:
		return NewFlag(deps), nil
	case marcopolo.ModeAllCountries:
		return NewAllCountries(deps), nil
	}
	return nil, fmt.Errorf("game: unknown mode %q", mode)
}

// base holds the bookkeeping shared by every mode.
type base struct {
	deps   Deps
	mode   marcopolo.Mode
	status marcopolo.Status
	keeper *Scorekeeper
	hints  HintPolicy
}

func newBase(mode marcopolo.Mode, deps Deps) base {
	deps = deps.withDefaults()
	return base{
		deps:   deps,
		mode:   mode,
		status: marcopolo.StatusPlaying,
		keeper: NewScorekeeper(mode, deps.Clock.Now()),
		hints:  PolicyFor(mode),
	}
}

func (b *base) Mode() marcopolo.Mode     { return b.mode }
func (b *base) Status() marcopolo.Status { return b.status }

func (b *base) now() time.Time { return b.deps.Clock.Now() }

// Keeper exposes the session counters.
func (b *base) Keeper() *Scorekeeper { return b.keeper }

func (b *base) Submission(player string) (marcopolo.HighscoreSubmission, error) {
	if !b.status.Terminal() {
		return marcopolo.HighscoreSubmission{}, marcopolo.ErrNotFinished
	}
	return b.keeper.Submission(player)
}

// checkOpen rejects input once the session is over or mid-transition.
func (b *base) checkOpen() error {
	switch {
	case b.status.Terminal():
		return marcopolo.ErrSessionOver
	case b.status == marcopolo.StatusRoundComplete:
		return marcopolo.ErrProcessing
	}
	return nil
}

func (b *base) finish(winner *marcopolo.Winner, missing int, status marcopolo.Status) {
	b.keeper.Finish(b.now(), winner, missing)
	b.status = status
	b.deps.Notify(Event{Type: EventFinished, Status: status})
}

func (b *base) snapshot() Snapshot {
	now := b.now()
	return Snapshot{
		Mode:           b.mode,
		Status:         b.status,
		StartedAt:      b.keeper.StartedAt(),
		ElapsedSeconds: b.keeper.Elapsed(now),
		Attempts:       b.keeper.Attempts(),
		Hints:          b.keeper.Hints(),
		TotalDistance:  b.keeper.TotalDistance(),
		CatalogSize:    b.deps.Catalog.Len(),
		Winner:         b.keeper.Winner(),
	}
}

func copySet(m map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}

func duplicate(country marcopolo.Country) error {
	return fmt.Errorf("%w: %s", marcopolo.ErrDuplicateGuess, country.Name)
}
