package game

import (
	"errors"
	"math"
	"testing"

	"github.com/playperu/marcopolo/internal/marcopolo"
)

func TestDistanceScenario(t *testing.T) {
	deps, _, _, rec := testDeps(t)
	spain := mustFind(t, "España")
	g := NewDistance(deps, spain)

	res, err := g.Submit(mustFind(t, "Francia"))
	if err != nil {
		t.Fatalf("guess Francia: %v", err)
	}
	if res.Correct || res.Status != marcopolo.StatusPlaying {
		t.Fatalf("Francia should not win, got %+v", res)
	}
	if d := *res.Guess.Distance; math.Abs(d-1054) > 2 {
		t.Errorf("Francia distance = %v, want about 1054", d)
	}

	res, err = g.Submit(mustFind(t, "espana"))
	if err != nil {
		t.Fatalf("guess España: %v", err)
	}
	if !res.Correct || *res.Guess.Distance != 0 || res.Status != marcopolo.StatusWon {
		t.Fatalf("España should win with distance 0, got %+v", res)
	}
	if rec.count(EventFinished) != 1 {
		t.Errorf("finished events = %d, want 1", rec.count(EventFinished))
	}

	sub, err := g.Submission("Ana")
	if err != nil {
		t.Fatalf("Submission: %v", err)
	}
	franceKm := *g.Guesses()[0].Distance
	want := marcopolo.HighscoreSubmission{
		Game:           marcopolo.ModeDistance,
		Player:         "Ana",
		Score:          franceKm,
		Attempts:       2,
		WinCountryName: "España",
		WinCountryCode: "es",
	}
	if sub != want {
		t.Errorf("submission = %+v, want %+v", sub, want)
	}
}

func TestDistanceNonTargetNeverEnds(t *testing.T) {
	deps, _, _, _ := testDeps(t)
	target := mustFind(t, "Japón")
	g := NewDistance(deps, target)

	for _, c := range wrongFor(target, 40) {
		res, err := g.Submit(c)
		if err != nil {
			t.Fatalf("submit %s: %v", c.Name, err)
		}
		if res.Correct || res.Status.Terminal() {
			t.Fatalf("%s ended the session", c.Name)
		}
		if *res.Guess.Distance <= 0 {
			t.Errorf("%s distance = %v, want > 0", c.Name, *res.Guess.Distance)
		}
	}
	if _, err := g.Submission("x"); !errors.Is(err, marcopolo.ErrNotFinished) {
		t.Errorf("Submission before finish err = %v", err)
	}
}

func TestDistanceDuplicate(t *testing.T) {
	deps, _, _, _ := testDeps(t)
	g := NewDistance(deps, mustFind(t, "Chile"))

	if _, err := g.Submit(mustFind(t, "México")); err != nil {
		t.Fatal(err)
	}
	dup := marcopolo.Country{Name: "MEXICO", Latitude: 19.4326, Longitude: -99.1332, Code: "mx"}
	if _, err := g.Submit(dup); !errors.Is(err, marcopolo.ErrDuplicateGuess) {
		t.Fatalf("err = %v, want ErrDuplicateGuess", err)
	}
	if n := len(g.Guesses()); n != 1 {
		t.Errorf("guesses = %d, want 1", n)
	}
	if n := g.Keeper().Attempts(); n != 1 {
		t.Errorf("attempts = %d, want 1", n)
	}
}

func TestDistanceAfterWin(t *testing.T) {
	deps, _, _, _ := testDeps(t)
	target := mustFind(t, "Perú")
	g := NewDistance(deps, target)
	if _, err := g.Submit(target); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Submit(mustFind(t, "Chile")); !errors.Is(err, marcopolo.ErrSessionOver) {
		t.Errorf("err = %v, want ErrSessionOver", err)
	}
	if _, err := g.Hint(); !errors.Is(err, marcopolo.ErrSessionOver) {
		t.Errorf("hint err = %v, want ErrSessionOver", err)
	}
}

func TestDistanceHasNoHints(t *testing.T) {
	deps, _, _, _ := testDeps(t)
	g := NewDistance(deps, mustFind(t, "Perú"))
	if _, err := g.Hint(); !errors.Is(err, marcopolo.ErrHintUnavailable) {
		t.Errorf("err = %v, want ErrHintUnavailable", err)
	}
	if err := g.GiveUp(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("GiveUp err = %v, want ErrUnsupported", err)
	}
}

func TestSortedByDistanceKeepsOriginal(t *testing.T) {
	deps, _, _, _ := testDeps(t)
	g := NewDistance(deps, mustFind(t, "España"))
	for _, name := range []string{"Australia", "Francia", "Brasil", "Portugal"} {
		if _, err := g.Submit(mustFind(t, name)); err != nil {
			t.Fatal(err)
		}
	}
	sorted := marcopolo.SortedByDistance(g.Guesses())
	if sorted[0].Country.Name != "Portugal" || sorted[3].Country.Name != "Australia" {
		t.Errorf("unexpected order: %s ... %s", sorted[0].Country.Name, sorted[3].Country.Name)
	}
	if g.Guesses()[0].Country.Name != "Australia" {
		t.Error("sorting mutated the guess sequence")
	}
}
