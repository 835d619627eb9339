// Package offline implements the offline caching proxy that fronts the SPA:
// a static bucket pre-filled on install, a dynamic bucket filled by
// stale-while-revalidate, and an app-shell fallback for page loads.
package offline

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/crypto/blake2b"
)

var (
	// ErrNoResponse is returned when neither the cache nor the network
	// produced a response.
	ErrNoResponse = errors.New("offline: no cached response and network failed")
	// ErrInstallFailed aborts activation; nothing from the manifest is kept.
	ErrInstallFailed = errors.New("offline: install failed")
	// ErrMiss is returned by Storage.Match when no bucket holds the key.
	ErrMiss = errors.New("offline: cache miss")
	// ErrTooLarge is returned for an upstream body over the buffering limit.
	// Such a response is never served or stored.
	ErrTooLarge = errors.New("offline: response body too large")
)

// Response is a fully buffered HTTP response as kept in a bucket.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
	// Basic marks a same-origin response. Only basic 200 responses are
	// eligible for the dynamic bucket.
	Basic    bool
	Digest   [blake2b.Size256]byte
	StoredAt time.Time
}

func newResponse(status int, header http.Header, body []byte, basic bool) *Response {
	return &Response{
		Status: status,
		Header: header,
		Body:   body,
		Basic:  basic,
		Digest: blake2b.Sum256(body),
	}
}

func (r *Response) cacheable() bool {
	return r.Status == http.StatusOK && r.Basic
}

// Storage is a set of named buckets of responses keyed by request path.
// Implementations must be safe for concurrent use; concurrent puts to the
// same key are last-write-wins.
type Storage interface {
	// Buckets lists bucket names in creation order.
	Buckets(ctx context.Context) ([]string, error)
	DeleteBucket(ctx context.Context, name string) error
	Put(ctx context.Context, bucket, key string, resp *Response) error
	// PutAll stores every entry or none of them.
	PutAll(ctx context.Context, bucket string, entries map[string]*Response) error
	// Match searches every bucket in creation order.
	Match(ctx context.Context, key string) (*Response, error)
}
