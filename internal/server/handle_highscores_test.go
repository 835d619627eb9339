package server

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/playperu/marcopolo/internal/highscore"
	"github.com/playperu/marcopolo/internal/marcopolo"
)

func TestSubmitHighscore(t *testing.T) {
	app := newTestApp(t)
	c := app.newClient()
	sess := c.start(t, marcopolo.ModeAllCountries)
	base := "/api/sessions/" + sess.ID

	if rec := c.do(t, http.MethodPost, base+"/highscore", HighscoreRequest{Player: "Ana"}); rec.Code != http.StatusConflict {
		t.Fatalf("submit before finish status = %d, want 409", rec.Code)
	}

	c.do(t, http.MethodPost, base+"/guesses", GuessRequest{Name: "Chile"})
	app.clock.Advance(90*time.Second + 500*time.Millisecond)
	if rec := c.do(t, http.MethodPost, base+"/give-up", nil); rec.Code != http.StatusOK {
		t.Fatalf("give-up status = %d", rec.Code)
	}

	if rec := c.do(t, http.MethodPost, base+"/highscore", HighscoreRequest{Player: "  "}); rec.Code != http.StatusBadRequest {
		t.Errorf("blank player status = %d, want 400", rec.Code)
	}

	app.board.fail(fmt.Errorf("%w: status 500", highscore.ErrSubmissionFailed))
	rec := c.do(t, http.MethodPost, base+"/highscore", HighscoreRequest{Player: "Ana"})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("failed submit status = %d, want 502", rec.Code)
	}
	if msg := decode[ErrorResponse](t, rec).Error; msg != "Failed to submit highscore" {
		t.Errorf("error = %q", msg)
	}

	// The session is untouched, so the player can retry.
	app.board.fail(nil)
	rec = c.do(t, http.MethodPost, base+"/highscore", HighscoreRequest{Player: "Ana"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("retry status = %d: %s", rec.Code, rec.Body.String())
	}
	got := decode[HighscoreResponse](t, rec)
	want := marcopolo.HighscoreSubmission{
		Game:           marcopolo.ModeAllCountries,
		Player:         "Ana",
		Score:          90,
		Attempts:       194,
		WinCountryName: "Chile",
		WinCountryCode: "cl",
	}
	if !got.Submitted || got.Submission != want {
		t.Errorf("submission = %+v, want %+v", got.Submission, want)
	}
	if len(app.board.subs) != 1 {
		t.Errorf("upstream submissions = %d, want 1", len(app.board.subs))
	}
}

func TestSubmitHighscoreOnce(t *testing.T) {
	app := newTestApp(t)
	c := app.newClient()
	sess := c.start(t, marcopolo.ModeAllCountries)
	base := "/api/sessions/" + sess.ID

	c.do(t, http.MethodPost, base+"/guesses", GuessRequest{Name: "Chile"})
	c.do(t, http.MethodPost, base+"/give-up", nil)

	if rec := c.do(t, http.MethodPost, base+"/highscore", HighscoreRequest{Player: "Ana"}); rec.Code != http.StatusCreated {
		t.Fatalf("first submit status = %d: %s", rec.Code, rec.Body.String())
	}
	for i := range 2 {
		rec := c.do(t, http.MethodPost, base+"/highscore", HighscoreRequest{Player: "Ana"})
		if rec.Code != http.StatusConflict {
			t.Errorf("submit #%d status = %d, want 409", i+2, rec.Code)
		}
	}
	if len(app.board.subs) != 1 {
		t.Errorf("upstream submissions = %d, want 1", len(app.board.subs))
	}

	rec := c.do(t, http.MethodGet, base, nil)
	if got := decode[SessionResponse](t, rec); !got.HighscoreSubmitted {
		t.Error("highscoreSubmitted = false after a successful submit")
	}

	// A reset starts a new game with its own submission.
	if rec := c.do(t, http.MethodPost, base+"/reset", nil); rec.Code != http.StatusOK {
		t.Fatalf("reset status = %d", rec.Code)
	}
	c.do(t, http.MethodPost, base+"/give-up", nil)
	if rec := c.do(t, http.MethodPost, base+"/highscore", HighscoreRequest{Player: "Ana"}); rec.Code != http.StatusCreated {
		t.Errorf("submit after reset status = %d, want 201", rec.Code)
	}
}

func TestListHighscores(t *testing.T) {
	app := newTestApp(t)
	app.board.entries = []highscore.Entry{
		{HighscoreSubmission: marcopolo.HighscoreSubmission{Game: marcopolo.ModeFlag, Player: "Ana", Score: 80}},
		{HighscoreSubmission: marcopolo.HighscoreSubmission{Game: marcopolo.ModeDistance, Player: "Leo", Score: 3000}},
		{HighscoreSubmission: marcopolo.HighscoreSubmission{Game: marcopolo.ModeFlag, Player: "Eva", Score: 95}},
	}
	c := app.newClient()

	rec := c.do(t, http.MethodGet, "/api/highscores/flag", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	got := decode[[]highscore.Entry](t, rec)
	if len(got) != 2 || got[0].Player != "Ana" || got[1].Player != "Eva" {
		t.Errorf("entries = %+v", got)
	}

	if rec := c.do(t, http.MethodGet, "/api/highscores/capitals", nil); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown game status = %d, want 400", rec.Code)
	}

	app.board.fail(highscore.ErrFetchFailed)
	if rec := c.do(t, http.MethodGet, "/api/highscores/flag", nil); rec.Code != http.StatusBadGateway {
		t.Errorf("upstream failure status = %d, want 502", rec.Code)
	}
}
