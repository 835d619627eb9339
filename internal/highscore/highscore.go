// Package highscore talks to the external highscore API that stores and
// ranks finished sessions.
package highscore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/playperu/marcopolo/internal/marcopolo"
)

var (
	ErrSubmissionFailed = errors.New("highscore submission failed")
	ErrFetchFailed      = errors.New("highscore fetch failed")
)

// Entry is one leaderboard row as returned by the API.
type Entry struct {
	marcopolo.HighscoreSubmission
	Date time.Time `json:"date"`
}

// Leaderboard is the narrow interface the game server depends on.
type Leaderboard interface {
	Submit(ctx context.Context, sub marcopolo.HighscoreSubmission) error
	List(ctx context.Context, game marcopolo.Mode) ([]Entry, error)
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient returns a client for the API rooted at baseURL. A nil httpClient
// uses a client with a 10 s timeout.
func NewClient(baseURL, apiKey string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpClient,
		logger:  logger,
	}
}

// Submit POSTs one submission. It is never retried; a failure is reported
// to the caller, who may submit again.
func (c *Client) Submit(ctx context.Context, sub marcopolo.HighscoreSubmission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("%w: encoding: %v", ErrSubmissionFailed, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/highscores", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("highscore rejected", "game", sub.Game, "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrSubmissionFailed, resp.StatusCode)
	}
	c.logger.Info("highscore submitted", "game", sub.Game, "player", sub.Player, "score", sub.Score)
	return nil
}

// List fetches the leaderboard of one game in the order the API returns it.
func (c *Client) List(ctx context.Context, game marcopolo.Mode) ([]Entry, error) {
	u := c.baseURL + "/highscores/" + url.PathEscape(string(game))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: decoding: %v", ErrFetchFailed, err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
}
