package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesim/pkg/types"
)

// scriptedRand replays a fixed list of draws, wrapping around at the end.
type scriptedRand struct {
	draws []int
	calls int
}

func (r *scriptedRand) IntN(n int) int {
	v := r.draws[r.calls%len(r.draws)] % n
	r.calls++
	return v
}

func notations(moves []types.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation()
	}
	return out
}

func TestScrambleZeroSteps(t *testing.T) {
	s, moves := NewSeededScrambler(1).Scramble(New(), 0)
	assert.Equal(t, New(), s)
	assert.NotNil(t, moves)
	assert.Empty(t, moves)

	s, moves = NewSeededScrambler(1).Scramble(New(), -5)
	assert.Equal(t, New(), s)
	assert.Empty(t, moves)
}

func TestScrambleRedrawsSameFace(t *testing.T) {
	// U, then U' (same face, redrawn), U (redrawn), then D.
	rng := &scriptedRand{draws: []int{0, 1, 0, 2, 11}}
	s, moves := NewScrambler(rng).Scramble(New(), 3)

	assert.Equal(t, []string{"U", "D", "R'"}, notations(moves))
	assert.Equal(t, 5, rng.calls)
	assert.Equal(t, Apply(Apply(Apply(New(), "U"), "D"), "R'"), s)
}

func TestScrambleAdjacencyAndReplay(t *testing.T) {
	start := New()
	s, moves := NewSeededScrambler(42).Scramble(start, 500)
	require.Len(t, moves, 500)
	require.NoError(t, s.Validate())

	for i := 1; i < len(moves); i++ {
		assert.NotEqual(t, moves[i-1].Base(), moves[i].Base(), "moves %d and %d share a face", i-1, i)
	}

	assert.Equal(t, s, ApplyMoves(start, moves), "returned moves must reproduce the state")

	for i := len(moves) - 1; i >= 0; i-- {
		s = ApplyMove(s, moves[i].Inverse())
	}
	assert.True(t, s.IsSolved())
}

func TestSeededScrambleIsDeterministic(t *testing.T) {
	a, am := NewSeededScrambler(7).Scramble(New(), 25)
	b, bm := NewSeededScrambler(7).Scramble(New(), 25)
	assert.Equal(t, a, b)
	assert.Equal(t, am, bm)
}

func TestScrambleDefaultSource(t *testing.T) {
	s, moves := NewScrambler(nil).Scramble(New(), 20)
	assert.Len(t, moves, 20)
	assert.NoError(t, s.Validate())
}
