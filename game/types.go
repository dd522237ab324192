package game

import (
	"fmt"
	"time"
)

// GameType names one of the mini-games, values match the persisted record fields
type GameType string

const (
	ColorWord   GameType = "colorWord"
	NumberHunt  GameType = "numberHunt"
	MemoryMatch GameType = "memoryMatch"
)

// AllGameTypes lists the games in menu order
var AllGameTypes = []GameType{ColorWord, NumberHunt, MemoryMatch}

// ParseGameType validates a game type name
func ParseGameType(s string) (GameType, error) {
	for _, t := range AllGameTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown game type %q", s)
}

// HigherIsBetter reports the better direction of a result value
// Color word counts points, the other games measure elapsed milliseconds
func (t GameType) HigherIsBetter() bool {
	return t == ColorWord
}

// Better reports whether a is a strictly better result value than b for this game
func (t GameType) Better(a, b int64) bool {
	if t.HigherIsBetter() {
		return a > b
	}
	return a < b
}

// Result is the value a finished session hands to the controller
// Value is a point count for ColorWord and elapsed milliseconds otherwise
type Result struct {
	GameType GameType `json:"gameType"`
	Value    int64    `json:"value"`
}

// Session is one play-through of a single game
type Session interface {
	// ID is a unique id for log correlation
	ID() string
	Type() GameType
	// Update fires every deferred transition due at or before now
	Update(now time.Time)
	// Result returns the final value once the session has finished
	Result() (Result, bool)
	// DrainEvents returns and clears notable transitions since the last call
	DrainEvents() []Event
	// Close cancels all pending timers, the session must not be used afterwards
	Close()
}
