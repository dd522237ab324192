package constants

import "time"

// Main Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame interval (~60 FPS), also bounds centisecond clock display lag
	FrameUpdateInterval = 16 * time.Millisecond
)

// Color Word Constants
const (
	// ColorWordDuration is the countdown length of one color/word round
	ColorWordDuration = 60 * time.Second

	// ColorWordTick is the countdown resolution
	ColorWordTick = time.Second

	// CorrectFeedbackDelay is how long the correct indicator blocks input before the next problem
	CorrectFeedbackDelay = 300 * time.Millisecond

	// IncorrectFeedbackDelay is how long the incorrect indicator blocks input before the next problem
	IncorrectFeedbackDelay = 500 * time.Millisecond

	// ColorWordWarningSeconds is the remaining time at which the countdown is drawn as a warning
	ColorWordWarningSeconds = 10
)

// Number Hunt Constants
const (
	// NumberHuntGridSize is the default side length of the number grid
	NumberHuntGridSize = 5

	// MaxNumberHuntGridSize bounds the grid so labels stay readable in a terminal
	MaxNumberHuntGridSize = 9
)

// Memory Match Constants
const (
	// MatchRevealDelay is how long a matching pair stays in checking before locking
	MatchRevealDelay = 500 * time.Millisecond

	// MismatchRevealDelay is how long a mismatched pair stays visible before flipping back
	MismatchRevealDelay = 1000 * time.Millisecond

	// CompletionDelay is the pause between the last match and the finished transition
	CompletionDelay = 500 * time.Millisecond

	// MemoryColumns is the number of card columns on the memory board
	MemoryColumns = 4
)
