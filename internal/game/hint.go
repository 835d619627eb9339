package game

import (
	"fmt"
	"strings"

	"github.com/playperu/marcopolo/internal/marcopolo"
)

// flagHintMinFailures is how many wrong attempts a Flag round needs before
// its hint unlocks.
const flagHintMinFailures = 3

// HintState is what a policy needs to decide eligibility.
type HintState struct {
	Failures  int  // wrong attempts in the current round
	Used      bool // hint already revealed in the current round
	Remaining int  // countries still unguessed
}

// HintPolicy is a mode's rule for when a hint may be requested and what it
// reveals.
type HintPolicy interface {
	Allow(s HintState) error
	Reveal(target marcopolo.Country) marcopolo.Hint
}

// PolicyFor returns the hint policy of a mode.
func PolicyFor(mode marcopolo.Mode) HintPolicy {
	switch mode {
	case marcopolo.ModeFlag:
		return roundHints{minFailures: flagHintMinFailures}
	case marcopolo.ModeAllCountries:
		return maskedNameHints{}
	}
	return noHints{}
}

type noHints struct{}

func (noHints) Allow(HintState) error {
	return fmt.Errorf("%w: this mode has no hints", marcopolo.ErrHintUnavailable)
}

func (noHints) Reveal(marcopolo.Country) marcopolo.Hint { return marcopolo.Hint{} }

// roundHints allows one hint per round once enough attempts have failed.
type roundHints struct {
	minFailures int
}

func (p roundHints) Allow(s HintState) error {
	if s.Used {
		return fmt.Errorf("%w: already used this round", marcopolo.ErrHintUnavailable)
	}
	if s.Failures < p.minFailures {
		return fmt.Errorf("%w: needs %d failed attempts, have %d",
			marcopolo.ErrHintUnavailable, p.minFailures, s.Failures)
	}
	return nil
}

func (roundHints) Reveal(target marcopolo.Country) marcopolo.Hint {
	return marcopolo.Hint{
		Text:      fmt.Sprintf("El país está en %s y su capital es %s.", target.Continent, target.Capital),
		Continent: target.Continent,
		Capital:   target.Capital,
	}
}

// maskedNameHints reveals the first letter of an unguessed country. Hints are
// unlimited while anything remains.
type maskedNameHints struct{}

func (maskedNameHints) Allow(s HintState) error {
	if s.Remaining == 0 {
		return fmt.Errorf("%w: nothing left to guess", marcopolo.ErrHintUnavailable)
	}
	return nil
}

func (maskedNameHints) Reveal(target marcopolo.Country) marcopolo.Hint {
	masked := Mask(target.Name)
	return marcopolo.Hint{
		Text:   masked,
		Masked: masked,
	}
}

// Mask keeps the first rune of name and replaces every other rune with '*'.
func Mask(name string) string {
	r := []rune(name)
	if len(r) == 0 {
		return ""
	}
	return string(r[0]) + strings.Repeat("*", len(r)-1)
}
