package server

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/playperu/marcopolo/internal/catalog"
	"github.com/playperu/marcopolo/internal/game"
	"github.com/playperu/marcopolo/internal/marcopolo"
)

func newTestRegistry(t *testing.T) (*Registry, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	reg := NewRegistry(game.SessionConfig{Catalog: catalog.Default(), Clock: clock}, discard)
	t.Cleanup(reg.Close)
	return reg, clock
}

func TestRegistryOneSessionPerPlayer(t *testing.T) {
	reg, _ := newTestRegistry(t)

	a1, err := reg.Start("ana", marcopolo.ModeDistance)
	if err != nil {
		t.Fatal(err)
	}
	b, err := reg.Start("leo", marcopolo.ModeFlag)
	if err != nil {
		t.Fatal(err)
	}
	a2, err := reg.Start("ana", marcopolo.ModeFlag)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := reg.Get(a1.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("replaced session err = %v, want ErrSessionNotFound", err)
	}
	if _, err := a1.Snapshot(); !errors.Is(err, marcopolo.ErrSessionOver) {
		t.Errorf("replaced session still usable: %v", err)
	}
	for _, s := range []*game.Session{a2, b} {
		if got, err := reg.Get(s.ID); err != nil || got != s {
			t.Errorf("Get(%s) = %v, %v", s.ID, got, err)
		}
	}
	if n := reg.Len(); n != 2 {
		t.Errorf("Len = %d, want 2", n)
	}
}

func TestRegistryReap(t *testing.T) {
	reg, clock := newTestRegistry(t)

	idle, _ := reg.Start("ana", marcopolo.ModeDistance)
	clock.Advance(90 * time.Minute)
	busy, _ := reg.Start("leo", marcopolo.ModeDistance)
	clock.Advance(45 * time.Minute)
	if _, err := busy.Snapshot(); err != nil {
		t.Fatal(err)
	}

	if n := reg.Reap(clock.Now(), 2*time.Hour); n != 1 {
		t.Fatalf("reaped %d, want 1", n)
	}
	if _, err := reg.Get(idle.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("idle session survived: %v", err)
	}
	if _, err := reg.Get(busy.ID); err != nil {
		t.Errorf("busy session reaped: %v", err)
	}

	// A reaped player can start again.
	if _, err := reg.Start("ana", marcopolo.ModeFlag); err != nil {
		t.Fatal(err)
	}
	if n := reg.Len(); n != 2 {
		t.Errorf("Len = %d, want 2", n)
	}
}

func TestReaperLifecycle(t *testing.T) {
	reg, clock := newTestRegistry(t)
	r, err := NewReaper(reg, time.Hour, time.Minute, clock, discard)
	if err != nil {
		t.Fatalf("NewReaper: %v", err)
	}
	r.Start()
	if err := r.Shutdown(); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
