package highscore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/playperu/marcopolo/internal/marcopolo"
)

// CachedLeaderboard serves leaderboard reads from Redis and drops the cached
// board of a game whenever a score for it is submitted. Redis errors fall
// through to the upstream API.
type CachedLeaderboard struct {
	next   Leaderboard
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedLeaderboard(next Leaderboard, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedLeaderboard {
	return &CachedLeaderboard{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

func cacheKey(game marcopolo.Mode) string { return "marcopolo:highscores:" + string(game) }

func (c *CachedLeaderboard) Submit(ctx context.Context, sub marcopolo.HighscoreSubmission) error {
	if err := c.next.Submit(ctx, sub); err != nil {
		return err
	}
	if err := c.rdb.Del(ctx, cacheKey(sub.Game)).Err(); err != nil {
		c.logger.Warn("leaderboard cache invalidation failed", "game", sub.Game, "error", err)
	}
	return nil
}

func (c *CachedLeaderboard) List(ctx context.Context, game marcopolo.Mode) ([]Entry, error) {
	data, err := c.rdb.Get(ctx, cacheKey(game)).Bytes()
	switch {
	case err == nil:
		var entries []Entry
		if err := json.Unmarshal(data, &entries); err == nil {
			return entries, nil
		}
		c.logger.Warn("discarding corrupt leaderboard cache", "game", game)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("leaderboard cache read failed", "game", game, "error", err)
	}

	entries, err := c.next.List(ctx, game)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(entries); err == nil {
		if err := c.rdb.Set(ctx, cacheKey(game), data, c.ttl).Err(); err != nil {
			c.logger.Debug("leaderboard cache write failed", "game", game, "error", err)
		}
	}
	return entries, nil
}
