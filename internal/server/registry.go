package server

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/playperu/marcopolo/internal/game"
	"github.com/playperu/marcopolo/internal/marcopolo"
)

var ErrSessionNotFound = errors.New("session not found")

// Registry holds the live sessions, at most one per player.
type Registry struct {
	cfg    game.SessionConfig
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*game.Session
	byPlayer map[string]string
}

func NewRegistry(cfg game.SessionConfig, logger *slog.Logger) *Registry {
	return &Registry{
		cfg:      cfg,
		logger:   logger,
		sessions: make(map[string]*game.Session),
		byPlayer: make(map[string]string),
	}
}

// Start opens a new session for playerID, closing the one it replaces.
func (r *Registry) Start(playerID string, mode marcopolo.Mode) (*game.Session, error) {
	s, err := game.NewSession(uuid.NewString(), playerID, mode, r.cfg)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.sessions[r.byPlayer[playerID]]; ok {
		prev.Close()
		delete(r.sessions, prev.ID)
		r.logger.Info("session replaced", "session", prev.ID, "player", playerID)
	}
	r.sessions[s.ID] = s
	r.byPlayer[playerID] = s.ID
	r.logger.Info("session started", "session", s.ID, "player", playerID, "mode", mode)
	return s, nil
}

func (r *Registry) Get(id string) (*game.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove closes and forgets a session.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.remove(id)
}

// remove is Remove with r.mu held.
func (r *Registry) remove(id string) {
	s, ok := r.sessions[id]
	if !ok {
		return
	}
	s.Close()
	delete(r.sessions, id)
	if r.byPlayer[s.PlayerID] == id {
		delete(r.byPlayer, s.PlayerID)
	}
}

// Reap removes sessions idle since before now-ttl and reports how many.
func (r *Registry) Reap(now time.Time, ttl time.Duration) int {
	cutoff := now.Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, s := range r.sessions {
		if s.IdleSince().Before(cutoff) {
			r.remove(id)
			n++
		}
	}
	return n
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Close abandons every session.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id := range r.sessions {
		r.remove(id)
	}
}
