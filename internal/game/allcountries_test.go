package game

import (
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/playperu/marcopolo/internal/catalog"
	"github.com/playperu/marcopolo/internal/marcopolo"
)

func TestAllCountriesWin(t *testing.T) {
	deps, clock, _, rec := testDeps(t)
	g := NewAllCountries(deps)
	all := catalog.Default().All()

	for i, c := range all {
		if g.Status() != marcopolo.StatusPlaying {
			t.Fatalf("status %s after %d guesses", g.Status(), i)
		}
		if _, err := g.Submit(c); err != nil {
			t.Fatalf("submit %s: %v", c.Name, err)
		}
		clock.Advance(time.Second)
	}

	if g.Status() != marcopolo.StatusWon {
		t.Fatalf("status = %s, want won", g.Status())
	}
	if rec.count(EventFinished) != 1 {
		t.Errorf("finished events = %d", rec.count(EventFinished))
	}

	sub, err := g.Submission("Ana")
	if err != nil {
		t.Fatal(err)
	}
	last := all[len(all)-1]
	// The last guess lands one second before the final clock advance.
	wantElapsed := float64(len(all) - 1)
	if sub.Score != wantElapsed || sub.Attempts != 0 || sub.WinCountryCode != last.Code {
		t.Errorf("submission = %+v, want score %v attempts 0 winner %s", sub, wantElapsed, last.Code)
	}
}

func TestAllCountriesGiveUp(t *testing.T) {
	deps, clock, _, _ := testDeps(t)
	g := NewAllCountries(deps)
	for _, name := range []string{"Perú", "Chile", "Japón"} {
		if _, err := g.Submit(mustFind(t, name)); err != nil {
			t.Fatal(err)
		}
	}
	clock.Advance(90*time.Second + 900*time.Millisecond)

	if err := g.GiveUp(); err != nil {
		t.Fatalf("GiveUp: %v", err)
	}
	if g.Status() != marcopolo.StatusLost {
		t.Fatalf("status = %s, want lost", g.Status())
	}

	size := catalog.Default().Len()
	if got := len(g.Missing()); got != size-3 {
		t.Errorf("missing = %d, want %d", got, size-3)
	}

	clock.Advance(time.Hour)
	snap := g.Snapshot()
	if snap.ElapsedSeconds != 90 {
		t.Errorf("elapsed = %d, want frozen at 90", snap.ElapsedSeconds)
	}

	sub, err := g.Submission("Ana")
	if err != nil {
		t.Fatal(err)
	}
	if sub.Score != 90 || sub.Attempts != size-3 || sub.WinCountryName != "Japón" {
		t.Errorf("submission = %+v", sub)
	}

	if err := g.GiveUp(); !errors.Is(err, marcopolo.ErrSessionOver) {
		t.Errorf("second GiveUp err = %v", err)
	}
	if _, err := g.Submit(mustFind(t, "Cuba")); !errors.Is(err, marcopolo.ErrSessionOver) {
		t.Errorf("submit after give up err = %v", err)
	}
}

func TestAllCountriesDuplicate(t *testing.T) {
	deps, _, _, _ := testDeps(t)
	g := NewAllCountries(deps)
	if _, err := g.Submit(mustFind(t, "Perú")); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Submit(mustFind(t, "PERU")); !errors.Is(err, marcopolo.ErrDuplicateGuess) {
		t.Fatalf("err = %v, want ErrDuplicateGuess", err)
	}
	if snap := g.Snapshot(); snap.Guessed != 1 {
		t.Errorf("guessed = %d, want 1", snap.Guessed)
	}
}

func TestAllCountriesHints(t *testing.T) {
	deps, _, _, _ := testDeps(t)
	g := NewAllCountries(deps)
	guessed := mustFind(t, "Perú")
	if _, err := g.Submit(guessed); err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 25; i++ {
		h, err := g.Hint()
		if err != nil {
			t.Fatalf("hint %d: %v", i, err)
		}
		if h.Masked == Mask(guessed.Name) {
			continue
		}
		first, _ := utf8.DecodeRuneInString(h.Masked)
		if strings.Count(h.Masked, "*") != utf8.RuneCountInString(h.Masked)-1 || first == '*' {
			t.Errorf("hint %d malformed: %q", i, h.Masked)
		}
		if got := g.Keeper().Hints(); got != i {
			t.Errorf("hints = %d, want %d", got, i)
		}
	}
	if snap := g.Snapshot(); snap.Guessed != 1 || snap.Attempts != 0 {
		t.Errorf("hints changed guesses/attempts: %+v", snap)
	}
}

func TestAllCountriesHintNeverRevealsGuessed(t *testing.T) {
	small, err := catalog.New([]marcopolo.Country{
		{Name: "Perú", Code: "pe"},
		{Name: "Chile", Code: "cl"},
	})
	if err != nil {
		t.Fatal(err)
	}
	deps, _, _, _ := testDeps(t)
	deps.Catalog = small
	g := NewAllCountries(deps)
	if _, err := g.Submit(small.At(0)); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		h, err := g.Hint()
		if err != nil {
			t.Fatal(err)
		}
		if h.Masked != "C****" {
			t.Fatalf("hint = %q, want C****", h.Masked)
		}
	}
}

func TestMask(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"Perú":    "P***",
		"Chad":    "C***",
		"Ómán":    "Ó***",
		"Timor O": "T******",
	}
	for in, want := range tests {
		if got := Mask(in); got != want {
			t.Errorf("Mask(%q) = %q, want %q", in, got, want)
		}
	}
}
