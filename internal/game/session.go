package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/playperu/marcopolo/internal/catalog"
	"github.com/playperu/marcopolo/internal/marcopolo"
)

// SessionConfig configures the engines a Session creates.
type SessionConfig struct {
	Catalog    *catalog.Catalog
	Clock      clockwork.Clock
	RoundDelay time.Duration
	Pick       func(n int) int
	// OnEvent receives engine notifications. It is called with the session
	// lock held and must not block.
	OnEvent func(sessionID string, e Event)
}

// Session owns the single active engine of a player. Every operation runs
// under one lock, so a rapid double submit cannot double-count an attempt,
// and delayed transitions scheduled by a previous engine are dropped after
// Reset or Close.
type Session struct {
	ID       string
	PlayerID string

	cfg SessionConfig

	mu         sync.Mutex
	engine     Engine
	gen        uint64
	timers     []clockwork.Timer
	closed     bool
	lastActive time.Time

	// Highscore state of the current engine.
	submitting bool
	submitted  bool
}

func NewSession(id, playerID string, mode marcopolo.Mode, cfg SessionConfig) (*Session, error) {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	s := &Session{ID: id, PlayerID: playerID, cfg: cfg}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.start(mode); err != nil {
		return nil, err
	}
	return s, nil
}

// start replaces the engine. The caller holds s.mu.
func (s *Session) start(mode marcopolo.Mode) error {
	s.cancelTimers()
	e, err := New(mode, Deps{
		Catalog:    s.cfg.Catalog,
		Clock:      s.cfg.Clock,
		Scheduler:  sessionScheduler{s},
		Notify:     s.relay,
		RoundDelay: s.cfg.RoundDelay,
		Pick:       s.cfg.Pick,
	})
	if err != nil {
		return fmt.Errorf("starting %s session: %w", mode, err)
	}
	s.engine = e
	s.submitting, s.submitted = false, false
	s.lastActive = s.cfg.Clock.Now()
	return nil
}

// cancelTimers invalidates every pending delayed transition. The caller
// holds s.mu.
func (s *Session) cancelTimers() {
	s.gen++
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}

func (s *Session) relay(e Event) {
	if s.cfg.OnEvent != nil {
		s.cfg.OnEvent(s.ID, e)
	}
}

// sessionScheduler is handed to engines; it is only called while the
// session lock is held.
type sessionScheduler struct{ s *Session }

func (sc sessionScheduler) AfterFunc(d time.Duration, fn func()) {
	s := sc.s
	gen := s.gen
	t := s.cfg.Clock.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// A timer that fired after a reset must not touch the new engine.
		if s.closed || s.gen != gen {
			return
		}
		fn()
	})
	s.timers = append(s.timers, t)
}

// do runs fn against the engine under the session lock.
func (s *Session) do(fn func(e Engine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return marcopolo.ErrSessionOver
	}
	s.lastActive = s.cfg.Clock.Now()
	return fn(s.engine)
}

func (s *Session) Submit(country marcopolo.Country) (Result, error) {
	var res Result
	err := s.do(func(e Engine) error {
		var err error
		res, err = e.Submit(country)
		return err
	})
	return res, err
}

// SubmitName resolves typed text through the catalog and submits it.
func (s *Session) SubmitName(name string) (Result, error) {
	country, err := s.cfg.Catalog.FindByName(name)
	if err != nil {
		return Result{}, err
	}
	return s.Submit(country)
}

func (s *Session) Hint() (marcopolo.Hint, error) {
	var h marcopolo.Hint
	err := s.do(func(e Engine) error {
		var err error
		h, err = e.Hint()
		return err
	})
	return h, err
}

func (s *Session) GiveUp() error {
	return s.do(func(e Engine) error { return e.GiveUp() })
}

// Suggestions lists catalog countries matching prefix that the engine has
// not already accepted.
func (s *Session) Suggestions(prefix string) ([]marcopolo.Country, error) {
	var out []marcopolo.Country
	err := s.do(func(e Engine) error {
		out = s.cfg.Catalog.Suggestions(prefix, e.Excluded())
		return nil
	})
	return out, err
}

func (s *Session) Snapshot() (Snapshot, error) {
	var snap Snapshot
	err := s.do(func(e Engine) error {
		snap = e.Snapshot()
		return nil
	})
	return snap, err
}

// BeginSubmission builds the highscore submission and reserves it, so a
// finished session reaches the leaderboard at most once. The caller must
// invoke done with whether the upstream accepted it; a rejected submission
// can be retried. done is a no-op if the session was reset meanwhile.
func (s *Session) BeginSubmission(player string) (sub marcopolo.HighscoreSubmission, done func(accepted bool), err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return sub, nil, marcopolo.ErrSessionOver
	}
	if s.submitted || s.submitting {
		return sub, nil, marcopolo.ErrSubmitted
	}
	sub, err = s.engine.Submission(player)
	if err != nil {
		return sub, nil, err
	}

	s.submitting = true
	gen := s.gen
	done = func(accepted bool) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen != gen {
			return
		}
		s.submitting = false
		s.submitted = accepted
	}
	return sub, done, nil
}

// Submitted reports whether the current engine's score reached the
// leaderboard.
func (s *Session) Submitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted
}

// Engine returns the current engine. Callers must not use it concurrently
// with the session; it is meant for inspection in tests and views.
func (s *Session) Engine() Engine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine
}

func (s *Session) Mode() marcopolo.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Mode()
}

// Reset starts a fresh engine of the same mode and drops pending timers.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return marcopolo.ErrSessionOver
	}
	return s.start(s.engine.Mode())
}

// Close abandons the session. Pending timers become no-ops.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.cancelTimers()
}

// IdleSince reports the last time the session was used.
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}
