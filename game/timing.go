package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/brain-trainer/constants"
)

var ErrInvalidTiming = errors.New("invalid timing")

// Timing holds every delay of the three games
// Values are UX parameters, only their consistency matters to correctness
type Timing struct {
	ColorWordDuration time.Duration
	ColorWordTick     time.Duration
	CorrectDelay      time.Duration
	IncorrectDelay    time.Duration
	MatchDelay        time.Duration
	MismatchDelay     time.Duration
	CompletionDelay   time.Duration
}

// DefaultTiming returns the stock delays
func DefaultTiming() Timing {
	return Timing{
		ColorWordDuration: constants.ColorWordDuration,
		ColorWordTick:     constants.ColorWordTick,
		CorrectDelay:      constants.CorrectFeedbackDelay,
		IncorrectDelay:    constants.IncorrectFeedbackDelay,
		MatchDelay:        constants.MatchRevealDelay,
		MismatchDelay:     constants.MismatchRevealDelay,
		CompletionDelay:   constants.CompletionDelay,
	}
}

// Validate rejects timings no session could run with
func (t Timing) Validate() error {
	if t.ColorWordTick <= 0 {
		return fmt.Errorf("color word tick %v: %w", t.ColorWordTick, ErrInvalidTiming)
	}
	if t.ColorWordDuration < t.ColorWordTick {
		return fmt.Errorf("color word duration %v shorter than tick %v: %w", t.ColorWordDuration, t.ColorWordTick, ErrInvalidTiming)
	}
	for _, d := range []time.Duration{t.CorrectDelay, t.IncorrectDelay, t.MatchDelay, t.MismatchDelay, t.CompletionDelay} {
		if d < 0 {
			return fmt.Errorf("negative delay %v: %w", d, ErrInvalidTiming)
		}
	}
	return nil
}

// countdownTicks is the number of ticks in a color word round
func (t Timing) countdownTicks() int {
	return int(t.ColorWordDuration / t.ColorWordTick)
}
