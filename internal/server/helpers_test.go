package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"

	"github.com/playperu/marcopolo/internal/catalog"
	"github.com/playperu/marcopolo/internal/game"
	"github.com/playperu/marcopolo/internal/highscore"
	"github.com/playperu/marcopolo/internal/marcopolo"
)

const testCDN = "https://flagcdn.com"

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeBoard struct {
	mu      sync.Mutex
	err     error
	subs    []marcopolo.HighscoreSubmission
	entries []highscore.Entry
}

func (b *fakeBoard) Submit(_ context.Context, sub marcopolo.HighscoreSubmission) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.subs = append(b.subs, sub)
	return nil
}

func (b *fakeBoard) List(_ context.Context, mode marcopolo.Mode) ([]highscore.Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return nil, b.err
	}
	var out []highscore.Entry
	for _, e := range b.entries {
		if e.Game == mode {
			out = append(out, e)
		}
	}
	return out, nil
}

func (b *fakeBoard) fail(err error) {
	b.mu.Lock()
	b.err = err
	b.mu.Unlock()
}

type testApp struct {
	router   chi.Router
	clock    *clockwork.FakeClock
	sessions *Registry
	broker   *Broker
	board    *fakeBoard
	deps     Deps
}

// newTestApp wires the router with a fake clock and a picker that always
// draws the first catalog entry, so every target is Afganistán.
func newTestApp(t *testing.T, opts ...func(*Deps)) *testApp {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	broker := NewBroker()
	sessions := NewRegistry(game.SessionConfig{
		Catalog:    catalog.Default(),
		Clock:      clock,
		RoundDelay: game.DefaultRoundDelay,
		Pick:       func(int) int { return 0 },
		OnEvent:    broker.Publish,
	}, discard)
	t.Cleanup(sessions.Close)

	board := &fakeBoard{}
	d := Deps{
		Logger:      discard,
		Catalog:     catalog.Default(),
		Sessions:    sessions,
		Broker:      broker,
		Leaderboard: board,
		FlagCDN:     testCDN,
		Clock:       clock,
	}
	for _, o := range opts {
		o(&d)
	}
	return &testApp{
		router:   NewRouter(d, nil),
		clock:    clock,
		sessions: sessions,
		broker:   broker,
		board:    board,
		deps:     d,
	}
}

// client remembers the mp_player cookie between requests.
type client struct {
	app    *testApp
	cookie *http.Cookie
}

func (a *testApp) newClient() *client { return &client{app: a} }

func (c *client) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	c.app.router.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == playerCookieName {
			c.cookie = ck
		}
	}
	return rec
}

func (c *client) start(t *testing.T, mode marcopolo.Mode) SessionResponse {
	t.Helper()
	rec := c.do(t, http.MethodPost, "/api/sessions", StartSessionRequest{Mode: mode})
	if rec.Code != http.StatusCreated {
		t.Fatalf("start %s: status %d: %s", mode, rec.Code, rec.Body.String())
	}
	return decode[SessionResponse](t, rec)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decoding %T: %v (body %q)", v, err, rec.Body.String())
	}
	return v
}
