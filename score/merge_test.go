package score

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/brain-trainer/game"
)

func TestMergeColorWordKeepsMaximum(t *testing.T) {
	r := DefaultRecord()

	r = Merge(r, game.Result{GameType: game.ColorWord, Value: 12})
	assert.Equal(t, int64(12), r.ColorWord)

	r = Merge(r, game.Result{GameType: game.ColorWord, Value: 7})
	assert.Equal(t, int64(12), r.ColorWord)

	r = Merge(r, game.Result{GameType: game.ColorWord, Value: 13})
	assert.Equal(t, int64(13), r.ColorWord)
	assert.Nil(t, r.NumberHunt)
	assert.Nil(t, r.MemoryMatch)
}

// TestMergeNumberHuntScenario follows a fresh record through three number hunt results
func TestMergeNumberHuntScenario(t *testing.T) {
	r := DefaultRecord()
	require.True(t, r.Equal(Record{}))

	r = Merge(r, game.Result{GameType: game.NumberHunt, Value: 15000})
	require.NotNil(t, r.NumberHunt)
	assert.Equal(t, int64(15000), *r.NumberHunt)
	assert.Equal(t, int64(0), r.ColorWord)
	assert.Nil(t, r.MemoryMatch)

	r = Merge(r, game.Result{GameType: game.NumberHunt, Value: 20000})
	assert.Equal(t, int64(15000), *r.NumberHunt)

	r = Merge(r, game.Result{GameType: game.NumberHunt, Value: 9000})
	assert.Equal(t, int64(9000), *r.NumberHunt)
}

func TestMergeMemoryMatchFirstResultSets(t *testing.T) {
	r := Merge(DefaultRecord(), game.Result{GameType: game.MemoryMatch, Value: 42000})
	best, ok := r.Best(game.MemoryMatch)
	require.True(t, ok)
	assert.Equal(t, int64(42000), best)

	_, ok = r.Best(game.NumberHunt)
	assert.False(t, ok)
}

func TestMergeIgnoresInvalidResults(t *testing.T) {
	r := Record{ColorWord: 5, NumberHunt: ptr(1000)}
	assert.True(t, Merge(r, game.Result{GameType: game.NumberHunt, Value: -1}).Equal(r))
	assert.True(t, Merge(r, game.Result{GameType: "tetris", Value: 1}).Equal(r))
}

func TestMergeDoesNotAliasInput(t *testing.T) {
	r := Record{NumberHunt: ptr(15000)}
	before := *r.NumberHunt

	_ = Merge(r, game.Result{GameType: game.NumberHunt, Value: 100})
	assert.Equal(t, before, *r.NumberHunt, "merge must not write through the input record")
}

func randomResult(rng *rand.Rand) game.Result {
	gt := game.AllGameTypes[rng.IntN(len(game.AllGameTypes))]
	return game.Result{GameType: gt, Value: rng.Int64N(60000)}
}

func TestMergeIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	r := DefaultRecord()
	for i := 0; i < 500; i++ {
		x := randomResult(rng)
		once := Merge(r, x)
		twice := Merge(once, x)
		require.True(t, once.Equal(twice), "merge(merge(r, x), x) != merge(r, x) for %+v", x)
		assert.False(t, Improves(once, x))
		r = once
	}
}

func TestMergeMonotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	r := DefaultRecord()
	for i := 0; i < 1000; i++ {
		next := Merge(r, randomResult(rng))

		require.GreaterOrEqual(t, next.ColorWord, r.ColorWord)
		for _, gt := range []game.GameType{game.NumberHunt, game.MemoryMatch} {
			prev, had := r.Best(gt)
			cur, has := next.Best(gt)
			if had {
				require.True(t, has, "%s best disappeared", gt)
				require.LessOrEqual(t, cur, prev)
			}
		}
		r = next
	}
}
