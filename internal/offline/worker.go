package offline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

type State int

const (
	StateInstalling State = iota
	StateWaiting
	StateActive
)

func (s State) String() string {
	switch s {
	case StateInstalling:
		return "installing"
	case StateWaiting:
		return "waiting"
	case StateActive:
		return "active"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// MessageSkipWaiting forces a waiting worker to activate.
const MessageSkipWaiting = "SKIP_WAITING"

// Message is a control message sent by the page.
type Message struct {
	Type string `json:"type"`
}

// DefaultMaxBodyBytes bounds a buffered response.
const DefaultMaxBodyBytes = 32 << 20

type Options struct {
	// Origin is the upstream that relative request URLs resolve against.
	Origin *url.URL
	// Version suffixes the bucket names.
	Version     string
	Manifest    []string
	BypassHosts []string
	// Development enables the dev-tooling bypass rules.
	Development bool
	// MaxBodyBytes bounds a buffered upstream body. Defaults to
	// DefaultMaxBodyBytes.
	MaxBodyBytes int64
	Storage      Storage
	Client       *http.Client
	Logger       *slog.Logger
}

// Worker is the offline caching proxy. Fetch is safe for concurrent use.
type Worker struct {
	origin      *url.URL
	static      string
	dynamic     string
	manifest    []string
	bypassHosts []string
	dev         bool
	maxBody     int64
	store       Storage
	client      *http.Client
	logger      *slog.Logger

	mu    sync.Mutex
	state State

	bg sync.WaitGroup
}

func NewWorker(opts Options) *Worker {
	if opts.Version == "" {
		opts.Version = "v1"
	}
	if opts.Manifest == nil {
		opts.Manifest = DefaultManifest
	}
	if opts.BypassHosts == nil {
		opts.BypassHosts = DefaultBypassHosts
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.Storage == nil {
		opts.Storage = NewMemoryStorage()
	}
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Worker{
		origin:      opts.Origin,
		static:      "marcopolo-static-" + opts.Version,
		dynamic:     "marcopolo-dynamic-" + opts.Version,
		manifest:    opts.Manifest,
		bypassHosts: opts.BypassHosts,
		dev:         opts.Development,
		maxBody:     opts.MaxBodyBytes,
		store:       opts.Storage,
		client:      opts.Client,
		logger:      opts.Logger,
	}
}

func (w *Worker) StaticBucket() string  { return w.static }
func (w *Worker) DynamicBucket() string { return w.dynamic }

func (w *Worker) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Install fetches the whole manifest and stores it in the static bucket.
// Any failed or non-200 entry aborts the install with nothing stored.
func (w *Worker) Install(ctx context.Context) error {
	w.logger.Info("offline cache installing", "bucket", w.static, "assets", len(w.manifest))

	var mu sync.Mutex
	entries := make(map[string]*Response, len(w.manifest))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, path := range w.manifest {
		g.Go(func() error {
			req, err := http.NewRequestWithContext(gctx, http.MethodGet, path, nil)
			if err != nil {
				return err
			}
			resp, err := w.network(req)
			if err != nil {
				return fmt.Errorf("fetching %s: %w", path, err)
			}
			if resp.Status != http.StatusOK {
				return fmt.Errorf("fetching %s: status %d", path, resp.Status)
			}
			mu.Lock()
			entries[cacheKey(w.resolve(req.URL))] = resp
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		w.logger.Error("offline cache install failed", "error", err)
		return fmt.Errorf("%w: %v", ErrInstallFailed, err)
	}

	if err := w.store.PutAll(ctx, w.static, entries); err != nil {
		return fmt.Errorf("%w: storing manifest: %v", ErrInstallFailed, err)
	}

	w.mu.Lock()
	w.state = StateWaiting
	w.mu.Unlock()
	w.logger.Info("offline cache installed", "bucket", w.static)
	return nil
}

// Activate deletes every bucket outside the current static/dynamic pair and
// takes control of requests immediately.
func (w *Worker) Activate(ctx context.Context) error {
	w.mu.Lock()
	state := w.state
	w.mu.Unlock()
	if state == StateInstalling {
		return errors.New("offline: activate before install")
	}

	names, err := w.store.Buckets(ctx)
	if err != nil {
		return fmt.Errorf("listing buckets: %w", err)
	}
	keep := []string{w.static, w.dynamic}
	for _, name := range names {
		if slices.Contains(keep, name) {
			continue
		}
		if err := w.store.DeleteBucket(ctx, name); err != nil {
			return fmt.Errorf("evicting %s: %w", name, err)
		}
		w.logger.Info("offline cache evicted stale bucket", "bucket", name)
	}

	w.mu.Lock()
	w.state = StateActive
	w.mu.Unlock()
	w.logger.Info("offline cache active", "static", w.static, "dynamic", w.dynamic)
	return nil
}

// SkipWaiting activates a waiting worker. It is a no-op in any other state.
func (w *Worker) SkipWaiting(ctx context.Context) error {
	if w.State() != StateWaiting {
		return nil
	}
	return w.Activate(ctx)
}

// HandleMessage applies a control message. Unknown types are ignored.
func (w *Worker) HandleMessage(ctx context.Context, msg Message) error {
	w.logger.Debug("offline cache message", "type", msg.Type)
	if msg.Type == MessageSkipWaiting {
		return w.SkipWaiting(ctx)
	}
	return nil
}

// Fetch answers r according to the caching policy. Until the worker is
// active every request goes straight to the network.
func (w *Worker) Fetch(ctx context.Context, r *http.Request) (*Response, error) {
	r = r.WithContext(ctx)
	u := w.resolve(r.URL)

	if w.State() != StateActive || w.bypass(u) {
		return w.network(r)
	}
	if isNavigation(r) {
		return w.navigate(ctx, r)
	}
	if r.Method != http.MethodGet {
		return w.network(r)
	}
	return w.staleWhileRevalidate(ctx, r, u)
}

// navigate serves the cached shell, then the network, then the shell again.
func (w *Worker) navigate(ctx context.Context, r *http.Request) (*Response, error) {
	shell, err := w.store.Match(ctx, ShellKey)
	if err == nil {
		return shell, nil
	}
	if !errors.Is(err, ErrMiss) {
		w.logger.Warn("offline cache shell lookup failed", "error", err)
	}

	resp, netErr := w.network(r)
	if netErr == nil {
		return resp, nil
	}
	if shell, err := w.store.Match(ctx, ShellKey); err == nil {
		return shell, nil
	}
	return nil, fmt.Errorf("%w: %w", ErrNoResponse, netErr)
}

func (w *Worker) staleWhileRevalidate(ctx context.Context, r *http.Request, u *url.URL) (*Response, error) {
	key := cacheKey(u)
	cached, err := w.store.Match(ctx, key)
	if err != nil && !errors.Is(err, ErrMiss) {
		w.logger.Warn("offline cache lookup failed", "key", key, "error", err)
	}

	if cached != nil {
		bgReq := r.Clone(context.WithoutCancel(ctx))
		w.bg.Add(1)
		go func() {
			defer w.bg.Done()
			w.revalidate(bgReq, key, cached)
		}()
		return cached, nil
	}

	resp, err := w.network(r)
	if err != nil {
		w.logger.Debug("offline cache network failed", "key", key, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrNoResponse, err)
	}
	w.storeDynamic(r.Context(), key, resp, nil)
	return resp, nil
}

// revalidate refreshes key from the network. Errors are logged and dropped.
func (w *Worker) revalidate(r *http.Request, key string, cached *Response) {
	resp, err := w.network(r)
	if err != nil {
		w.logger.Debug("offline cache revalidation failed", "key", key, "error", err)
		return
	}
	w.storeDynamic(r.Context(), key, resp, cached)
}

// storeDynamic puts a cacheable response in the dynamic bucket unless its body
// matches the copy already held.
func (w *Worker) storeDynamic(ctx context.Context, key string, resp, cached *Response) {
	if !resp.cacheable() {
		return
	}
	if cached != nil && cached.Digest == resp.Digest {
		w.logger.Debug("offline cache entry unchanged", "key", key)
		return
	}
	if err := w.store.Put(ctx, w.dynamic, key, resp); err != nil {
		w.logger.Warn("offline cache store failed", "key", key, "error", err)
		return
	}
	w.logger.Debug("offline cache updated", "bucket", w.dynamic, "key", key)
}

// Wait blocks until every background revalidation has finished.
func (w *Worker) Wait() { w.bg.Wait() }

func (w *Worker) resolve(u *url.URL) *url.URL {
	if w.origin == nil || u.IsAbs() {
		return u
	}
	return w.origin.ResolveReference(u)
}

func (w *Worker) sameOrigin(u *url.URL) bool {
	return w.origin != nil && u.Scheme == w.origin.Scheme && u.Host == w.origin.Host
}

// network performs r against the resolved URL and buffers the response.
func (w *Worker) network(r *http.Request) (*Response, error) {
	u := w.resolve(r.URL)
	out, err := http.NewRequestWithContext(r.Context(), r.Method, u.String(), r.Body)
	if err != nil {
		return nil, err
	}
	out.Header = r.Header.Clone()
	removeHopHeaders(out.Header)
	// Let the transport negotiate compression so cached bodies are plain.
	out.Header.Del("Accept-Encoding")

	resp, err := w.client.Do(out)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, w.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", u, err)
	}
	if int64(len(body)) > w.maxBody {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, u, w.maxBody)
	}
	header := resp.Header.Clone()
	removeHopHeaders(header)
	header.Del("Content-Length")
	return newResponse(resp.StatusCode, header, body, w.sameOrigin(u)), nil
}

var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

func removeHopHeaders(h http.Header) {
	for _, k := range hopHeaders {
		h.Del(k)
	}
}
