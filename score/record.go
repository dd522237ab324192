package score

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lixenwraith/brain-trainer/game"
)

// RecordKey is the durable store key holding the score record
const RecordKey = "brain-training-scores"

var ErrInvalidRecord = errors.New("invalid score record")

// Record holds the best result per game
// ColorWord only grows, the timed games are absent until first played and then only shrink
type Record struct {
	ColorWord   int64  `json:"colorWord"`
	NumberHunt  *int64 `json:"numberHunt"`
	MemoryMatch *int64 `json:"memoryMatch"`
}

// DefaultRecord is the record of a player who has never finished a game
func DefaultRecord() Record {
	return Record{}
}

// Best returns the stored best for a game, false when absent
func (r Record) Best(t game.GameType) (int64, bool) {
	switch t {
	case game.ColorWord:
		return r.ColorWord, true
	case game.NumberHunt:
		return deref(r.NumberHunt)
	case game.MemoryMatch:
		return deref(r.MemoryMatch)
	}
	return 0, false
}

// Equal compares field values, not pointer identity
func (r Record) Equal(o Record) bool {
	return r.ColorWord == o.ColorWord &&
		equalOptional(r.NumberHunt, o.NumberHunt) &&
		equalOptional(r.MemoryMatch, o.MemoryMatch)
}

// Decode parses a stored record, rejecting shapes that would break the monotonic invariants
func Decode(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if r.ColorWord < 0 {
		return Record{}, fmt.Errorf("%w: negative colorWord %d", ErrInvalidRecord, r.ColorWord)
	}
	for name, v := range map[string]*int64{"numberHunt": r.NumberHunt, "memoryMatch": r.MemoryMatch} {
		if v != nil && *v < 0 {
			return Record{}, fmt.Errorf("%w: negative %s %d", ErrInvalidRecord, name, *v)
		}
	}
	return r, nil
}

// Encode serializes the record with null for absent times
func Encode(r Record) ([]byte, error) {
	return json.Marshal(r)
}

func deref(p *int64) (int64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

func equalOptional(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func ptr(v int64) *int64 {
	return &v
}
