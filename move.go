package cubesim

import (
	"github.com/SeamusWaldron/cubesim/internal/notation"
	"github.com/SeamusWaldron/cubesim/pkg/types"
)

// Face represents a cube face in standard notation.
type Face = types.Face

// Turn represents the direction of a quarter turn.
type Turn = types.Turn

// Move represents a single quarter turn of one face.
type Move = types.Move

const (
	FaceU = types.FaceU
	FaceD = types.FaceD
	FaceF = types.FaceF
	FaceB = types.FaceB
	FaceL = types.FaceL
	FaceR = types.FaceR
)

const (
	CW  = types.TurnCW  // Clockwise
	CCW = types.TurnCCW // Counter-clockwise
)

// ParseMove parses a single token: one of U D F B L R, optionally
// followed by ' for counter-clockwise.
func ParseMove(s string) (Move, error) {
	return types.ParseMove(s)
}

// ParseMoves parses a space-separated sequence of moves. The first
// malformed token fails the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	return notation.ParseSequence(s)
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	return notation.FormatSequence(moves)
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	return notation.Invert(moves)
}
