// Package marcopolo defines the core domain types shared by the three
// geography games.
package marcopolo

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	ErrDuplicateGuess  = errors.New("country already guessed")
	ErrUnknownCountry  = errors.New("country not found")
	ErrHintUnavailable = errors.New("hint not available")
	ErrSessionOver     = errors.New("session is over")
	ErrProcessing      = errors.New("round transition in progress")
	ErrNotFinished     = errors.New("session not finished")
	ErrPlayerRequired  = errors.New("player name is required")
	ErrSubmitted       = errors.New("highscore already submitted")
)

// Country is an immutable catalog entry.
type Country struct {
	Name      string  `json:"name"`
	Capital   string  `json:"capital"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Code      string  `json:"code"`
	Continent string  `json:"continent"`
}

// PlaceholderFlagCode is substituted when a flag image fails to load.
const PlaceholderFlagCode = "xx"

// FlagURL returns the CDN URL of the country's flag at the given pixel height.
func (c Country) FlagURL(base string, height int) string {
	return FlagURL(base, c.Code, height)
}

// FlagURL maps an ISO code to the flag provider's {height}/{code}.png layout.
func FlagURL(base, code string, height int) string {
	if code == "" {
		code = PlaceholderFlagCode
	}
	return fmt.Sprintf("%s/h%d/%s.png", strings.TrimRight(base, "/"), height, strings.ToLower(code))
}

// ThumbnailURL returns the fixed 16x12 flag used in guess lists.
func ThumbnailURL(base, code string) string {
	if code == "" {
		code = PlaceholderFlagCode
	}
	return fmt.Sprintf("%s/16x12/%s.png", strings.TrimRight(base, "/"), strings.ToLower(code))
}

type Mode string

const (
	ModeDistance     Mode = "country_distance"
	ModeFlag         Mode = "flag"
	ModeAllCountries Mode = "all_countries"
)

// ParseMode accepts the wire names used by the highscore API.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeDistance, ModeFlag, ModeAllCountries:
		return m, nil
	}
	return "", fmt.Errorf("unknown game mode %q", s)
}

type Status string

const (
	StatusPlaying           Status = "playing"
	StatusRoundComplete     Status = "round_complete"
	StatusWon               Status = "won"
	StatusAllRoundsComplete Status = "all_rounds_complete"
	StatusLost              Status = "lost"
)

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	switch s {
	case StatusWon, StatusAllRoundsComplete, StatusLost:
		return true
	}
	return false
}

// Guess is one accepted attempt. Distance is nil in modes without spatial
// scoring.
type Guess struct {
	Country  Country   `json:"country"`
	Distance *float64  `json:"distance,omitempty"`
	At       time.Time `json:"at"`
}

// SortedByDistance returns a copy of guesses ordered by ascending distance.
// The input is left untouched; guesses without a distance sort last.
func SortedByDistance(guesses []Guess) []Guess {
	out := make([]Guess, len(guesses))
	copy(out, guesses)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Distance, out[j].Distance
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}
		return *a < *b
	})
	return out
}

// Round is one Flag-mode sub-challenge.
type Round struct {
	Number       int       `json:"number"`
	Country      Country   `json:"-"`
	Attempts     []Country `json:"attempts"`
	AttemptCount int       `json:"attemptCount"`
	HintUsed     bool      `json:"hintUsed"`
	Completed    bool      `json:"completed"`
}

// Failures counts the wrong attempts of the round.
func (r Round) Failures() int {
	if r.Completed {
		return r.AttemptCount - 1
	}
	return r.AttemptCount
}

// Winner describes the country reported alongside a finished session: the
// target in Distance mode, the hardest round in Flag mode, the last guess in
// All-Countries mode.
type Winner struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Attempts int    `json:"attempts,omitempty"`
}

// Hint is the payload revealed by a hint request.
type Hint struct {
	Text      string `json:"text"`
	Continent string `json:"continent,omitempty"`
	Capital   string `json:"capital,omitempty"`
	Masked    string `json:"masked,omitempty"`
}

// HighscoreSubmission is the body POSTed to the highscore API.
type HighscoreSubmission struct {
	Game           Mode    `json:"game"`
	Player         string  `json:"player"`
	Score          float64 `json:"score"`
	Attempts       int     `json:"attempts"`
	Hints          int     `json:"hints"`
	WinCountryName string  `json:"win_country_name,omitempty"`
	WinCountryCode string  `json:"win_country_code,omitempty"`
}
