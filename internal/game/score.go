package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/playperu/marcopolo/internal/marcopolo"
)

// Scorekeeper accumulates the counters of one session and packages the
// highscore submission once the session is over.
type Scorekeeper struct {
	mode      marcopolo.Mode
	startedAt time.Time

	attempts      int
	hints         int
	totalDistance float64

	finished bool
	elapsed  int
	missing  int
	winner   *marcopolo.Winner
}

func NewScorekeeper(mode marcopolo.Mode, startedAt time.Time) *Scorekeeper {
	return &Scorekeeper{mode: mode, startedAt: startedAt}
}

// RecordAttempt counts one accepted guess. distance is nil outside Distance
// mode.
func (k *Scorekeeper) RecordAttempt(distance *float64) {
	k.attempts++
	if distance != nil {
		k.totalDistance += *distance
	}
}

func (k *Scorekeeper) RecordHint() { k.hints++ }

// Finish freezes the elapsed time and the reported country. Only the first
// call has an effect.
func (k *Scorekeeper) Finish(now time.Time, winner *marcopolo.Winner, missing int) {
	if k.finished {
		return
	}
	k.finished = true
	k.elapsed = elapsedSeconds(k.startedAt, now)
	k.missing = missing
	if winner != nil {
		w := *winner
		k.winner = &w
	}
}

// Elapsed returns whole seconds since the start, frozen once finished.
func (k *Scorekeeper) Elapsed(now time.Time) int {
	if k.finished {
		return k.elapsed
	}
	return elapsedSeconds(k.startedAt, now)
}

func (k *Scorekeeper) StartedAt() time.Time   { return k.startedAt }
func (k *Scorekeeper) Attempts() int          { return k.attempts }
func (k *Scorekeeper) Hints() int             { return k.hints }
func (k *Scorekeeper) TotalDistance() float64 { return k.totalDistance }
func (k *Scorekeeper) Missing() int           { return k.missing }
func (k *Scorekeeper) Finished() bool         { return k.finished }

// Winner returns a copy of the reported country, nil until finished.
func (k *Scorekeeper) Winner() *marcopolo.Winner {
	if k.winner == nil {
		return nil
	}
	w := *k.winner
	return &w
}

// Submission builds the highscore payload with the mode's score semantics:
// Distance reports cumulative kilometers over all guesses, Flag and
// All-Countries report elapsed seconds. All-Countries reports the missing
// count as its attempts.
func (k *Scorekeeper) Submission(player string) (marcopolo.HighscoreSubmission, error) {
	if !k.finished {
		return marcopolo.HighscoreSubmission{}, marcopolo.ErrNotFinished
	}
	player = strings.TrimSpace(player)
	if player == "" {
		return marcopolo.HighscoreSubmission{}, marcopolo.ErrPlayerRequired
	}

	sub := marcopolo.HighscoreSubmission{
		Game:   k.mode,
		Player: player,
		Hints:  k.hints,
	}
	switch k.mode {
	case marcopolo.ModeDistance:
		sub.Score = k.totalDistance
		sub.Attempts = k.attempts
	case marcopolo.ModeFlag:
		sub.Score = float64(k.elapsed)
		sub.Attempts = k.attempts
	case marcopolo.ModeAllCountries:
		sub.Score = float64(k.elapsed)
		sub.Attempts = k.missing
	default:
		return marcopolo.HighscoreSubmission{}, fmt.Errorf("unknown mode %q", k.mode)
	}
	if k.winner != nil {
		sub.WinCountryName = k.winner.Name
		sub.WinCountryCode = k.winner.Code
	}
	return sub, nil
}

func elapsedSeconds(start, now time.Time) int {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}
