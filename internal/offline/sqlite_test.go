package offline

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"testing"

	"github.com/playperu/marcopolo/internal/database"
	"github.com/playperu/marcopolo/internal/migrations"
)

func newSQLiteStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := migrations.Run(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return NewSQLiteStorage(db)
}

func TestSQLiteStorage(t *testing.T) {
	s := newSQLiteStorage(t)
	ctx := context.Background()

	if _, err := s.Match(ctx, "/index.html"); !errors.Is(err, ErrMiss) {
		t.Fatalf("Match on empty store err = %v, want ErrMiss", err)
	}

	shell := newResponse(http.StatusOK, http.Header{"Content-Type": {"text/html"}}, []byte("<html>"), true)
	if err := s.PutAll(ctx, "marcopolo-static-v1", map[string]*Response{
		"/index.html": shell,
		"/":           shell,
	}); err != nil {
		t.Fatalf("PutAll: %v", err)
	}
	newer := newResponse(http.StatusOK, http.Header{}, []byte("newer"), true)
	if err := s.Put(ctx, "marcopolo-dynamic-v1", "/index.html", newer); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Match(ctx, "/index.html")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if string(got.Body) != "<html>" {
		t.Errorf("body = %q, want the static copy", got.Body)
	}
	if got.Header.Get("Content-Type") != "text/html" || !got.Basic || got.Digest != shell.Digest {
		t.Errorf("round-tripped response = %+v", got)
	}
	if got.StoredAt.IsZero() {
		t.Error("StoredAt not set")
	}

	buckets, err := s.Buckets(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"marcopolo-static-v1", "marcopolo-dynamic-v1"}; !slices.Equal(buckets, want) {
		t.Errorf("buckets = %v, want %v", buckets, want)
	}

	if err := s.DeleteBucket(ctx, "marcopolo-static-v1"); err != nil {
		t.Fatalf("DeleteBucket: %v", err)
	}
	got, err = s.Match(ctx, "/index.html")
	if err != nil {
		t.Fatalf("Match after delete: %v", err)
	}
	if string(got.Body) != "newer" {
		t.Errorf("body = %q, want the dynamic copy", got.Body)
	}
	if _, err := s.Match(ctx, "/"); !errors.Is(err, ErrMiss) {
		t.Errorf("Match / err = %v, want ErrMiss", err)
	}
}

func TestSQLiteStorageLastWriteWins(t *testing.T) {
	s := newSQLiteStorage(t)
	ctx := context.Background()

	for _, body := range []string{"a", "b", "c"} {
		if err := s.Put(ctx, "marcopolo-dynamic-v1", "/app.js", newResponse(http.StatusOK, http.Header{}, []byte(body), true)); err != nil {
			t.Fatal(err)
		}
	}
	got, err := s.Match(ctx, "/app.js")
	if err != nil {
		t.Fatal(err)
	}
	if string(got.Body) != "c" {
		t.Errorf("body = %q, want c", got.Body)
	}
}

func TestWorkerOverSQLite(t *testing.T) {
	f := newFixture(t, []string{"/index.html"})
	store := newSQLiteStorage(t)
	f.worker.store = store
	f.activate(t)
	ctx := context.Background()

	if _, err := f.worker.Fetch(ctx, get(t, "/app.css", false)); err != nil {
		t.Fatal(err)
	}
	f.transport.down.Store(true)

	resp, err := f.worker.Fetch(ctx, get(t, "/app.css", false))
	if err != nil {
		t.Fatalf("cached Fetch: %v", err)
	}
	if string(resp.Body) != "/app.css v0" {
		t.Errorf("body = %q", resp.Body)
	}
	resp, err = f.worker.Fetch(ctx, get(t, "/flag", true))
	if err != nil {
		t.Fatalf("navigation: %v", err)
	}
	if string(resp.Body) != "<html>shell</html>" {
		t.Errorf("shell = %q", resp.Body)
	}
	f.worker.Wait()
}
