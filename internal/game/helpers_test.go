package game

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/playperu/marcopolo/internal/catalog"
	"github.com/playperu/marcopolo/internal/marcopolo"
)

var epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// manualScheduler collects delayed transitions until the test fires them.
type manualScheduler struct {
	pending []func()
}

func (m *manualScheduler) AfterFunc(_ time.Duration, fn func()) {
	m.pending = append(m.pending, fn)
}

func (m *manualScheduler) fire() {
	p := m.pending
	m.pending = nil
	for _, fn := range p {
		fn()
	}
}

type recorder struct {
	events []Event
}

func (r *recorder) notify(e Event) { r.events = append(r.events, e) }

func (r *recorder) count(t EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func testDeps(t *testing.T) (Deps, *clockwork.FakeClock, *manualScheduler, *recorder) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(epoch)
	sched := &manualScheduler{}
	rec := &recorder{}
	next := 0
	return Deps{
		Catalog:   catalog.Default(),
		Clock:     clock,
		Scheduler: sched,
		Notify:    rec.notify,
		// Deterministic round-robin picks.
		Pick: func(n int) int {
			next = (next + 7) % n
			return next
		},
	}, clock, sched, rec
}

func mustFind(t *testing.T, name string) marcopolo.Country {
	t.Helper()
	c, err := catalog.Default().FindByName(name)
	if err != nil {
		t.Fatalf("FindByName(%q): %v", name, err)
	}
	return c
}

// wrongFor returns n catalog countries that are not target.
func wrongFor(target marcopolo.Country, n int) []marcopolo.Country {
	var out []marcopolo.Country
	for _, c := range catalog.Default().All() {
		if len(out) == n {
			break
		}
		if c.Code != target.Code {
			out = append(out, c)
		}
	}
	return out
}
