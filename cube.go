package cubesim

import (
	"fmt"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/notation"
)

// State is an immutable snapshot of the cube. Copying a State copies
// every cubie.
type State = cube.State

// Coord addresses a cubie; each component is in {-1, 0, 1}.
type Coord = cube.Coord

// Direction is one of the six sticker directions of a cubie.
type Direction = cube.Direction

// Color represents a sticker color.
type Color = cube.Color

const (
	Up    = cube.Up
	Down  = cube.Down
	Front = cube.Front
	Back  = cube.Back
	Left  = cube.Left
	Right = cube.Right
)

const (
	White  = cube.White
	Yellow = cube.Yellow
	Green  = cube.Green
	Blue   = cube.Blue
	Red    = cube.Red
	Orange = cube.Orange
)

// DefaultScrambleSteps is the scramble length used by the application.
const DefaultScrambleSteps = 20

// Initialize returns the solved cube.
func Initialize() State {
	return cube.New()
}

// Copy returns an independent snapshot equal to s.
func Copy(s State) State {
	return s.Copy()
}

// Apply applies one move token. Unknown tokens return s unchanged.
func Apply(s State, token string) State {
	return cube.Apply(s, token)
}

// ApplyFace turns face a quarter turn, clockwise as seen from outside
// that face when clockwise is true.
func ApplyFace(s State, face Face, clockwise bool) State {
	return cube.Turn(s, face, clockwise)
}

// ApplyMove applies a parsed move.
func ApplyMove(s State, m Move) State {
	return cube.ApplyMove(s, m)
}

// ApplyMoves applies moves in order.
func ApplyMoves(s State, moves ...Move) State {
	return cube.ApplyMoves(s, moves)
}

// ApplyStrict applies one move token, returning ErrInvalidMove and the
// unchanged state if the token is not recognised.
func ApplyStrict(s State, token string) (State, error) {
	m, err := ParseMove(token)
	if err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	return cube.ApplyMove(s, m), nil
}

// ApplyNotation applies a space-separated sequence such as "R U R' U'".
// Either every token is valid and all are applied, or s is returned with
// ErrInvalidMove.
func ApplyNotation(s State, seq string) (State, error) {
	moves, err := notation.ParseSequence(seq)
	if err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	return cube.ApplyMoves(s, moves), nil
}

// Scrambled is the result of a scramble.
type Scrambled struct {
	State State
	Moves []string
}

// Scramble applies steps random quarter turns, never turning the same
// face twice in a row. Use WithSeed or WithRand for a reproducible result.
func Scramble(s State, steps int, opts ...Option) Scrambled {
	cfg := newConfig(opts)
	out, moves := cfg.scrambler().Scramble(s, steps)
	return Scrambled{State: out, Moves: notation.Tokens(moves)}
}
