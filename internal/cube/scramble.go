package cube

import (
	"math/rand/v2"

	"github.com/SeamusWaldron/cubesim/pkg/types"
)

// Rand is the source of scramble draws.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Scrambler generates random move sequences in which no two consecutive
// moves turn the same face.
type Scrambler struct {
	rng Rand
}

// NewScrambler creates a scrambler drawing from rng. A nil rng uses the
// process-wide generator.
func NewScrambler(rng Rand) *Scrambler {
	if rng == nil {
		rng = globalRand{}
	}
	return &Scrambler{rng: rng}
}

// NewSeededScrambler creates a scrambler whose output is fixed by seed.
func NewSeededScrambler(seed uint64) *Scrambler {
	return NewScrambler(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Scramble applies steps random quarter turns to s and returns the result
// together with the moves applied. A draw on the same face as the previous
// move is discarded and redrawn.
func (sc *Scrambler) Scramble(s State, steps int) (State, []types.Move) {
	if steps <= 0 {
		return s, []types.Move{}
	}

	moves := make([]types.Move, 0, steps)
	var last types.Face
	for i := 0; i < steps; i++ {
		var m types.Move
		for {
			m = types.MoveFromToken(uint8(sc.rng.IntN(types.TokenCount)))
			if m.Face != last {
				break
			}
		}
		s = ApplyMove(s, m)
		moves = append(moves, m)
		last = m.Face
	}
	return s, moves
}
