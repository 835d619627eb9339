package server

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
)

// Reaper periodically drops sessions nobody has touched for ttl.
type Reaper struct {
	sched gocron.Scheduler
}

func NewReaper(sessions *Registry, ttl, every time.Duration, clock clockwork.Clock, logger *slog.Logger) (*Reaper, error) {
	sched, err := gocron.NewScheduler(gocron.WithClock(clock))
	if err != nil {
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(every),
		gocron.NewTask(func() {
			if n := sessions.Reap(clock.Now(), ttl); n > 0 {
				logger.Info("reaped idle sessions", "count", n, "remaining", sessions.Len())
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		sched.Shutdown()
		return nil, fmt.Errorf("scheduling reaper: %w", err)
	}
	return &Reaper{sched: sched}, nil
}

func (r *Reaper) Start() { r.sched.Start() }

func (r *Reaper) Shutdown() error { return r.sched.Shutdown() }
