package score

import "github.com/lixenwraith/brain-trainer/game"

// Merge folds a finished session's result into the record
// A worse-or-equal result returns the record unchanged, so merging the same result twice is a no-op
// Results for unknown games and negative values are ignored
func Merge(r Record, res game.Result) Record {
	if res.Value < 0 {
		return r
	}

	switch res.GameType {
	case game.ColorWord:
		if res.Value > r.ColorWord {
			r.ColorWord = res.Value
		}
	case game.NumberHunt:
		if improves(r.NumberHunt, res.Value) {
			r.NumberHunt = ptr(res.Value)
		}
	case game.MemoryMatch:
		if improves(r.MemoryMatch, res.Value) {
			r.MemoryMatch = ptr(res.Value)
		}
	}
	return r
}

// Improves reports whether merging res would change r
func Improves(r Record, res game.Result) bool {
	return !Merge(r, res).Equal(r)
}

func improves(best *int64, v int64) bool {
	return best == nil || v < *best
}
