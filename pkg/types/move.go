// Package types contains the move vocabulary shared by the cubesim packages.
package types

import (
	"errors"
	"fmt"
)

// ErrInvalidNotation is returned when a move token does not match the grammar.
var ErrInvalidNotation = errors.New("cubesim: invalid move notation")

// Face represents a cube face in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
	FaceL Face = "L" // Left
	FaceR Face = "R" // Right
)

// Faces lists the six faces in scramble draw order.
var Faces = []Face{FaceU, FaceD, FaceF, FaceB, FaceL, FaceR}

// Valid reports whether f is one of the six face letters.
func (f Face) Valid() bool {
	switch f {
	case FaceU, FaceD, FaceF, FaceB, FaceL, FaceR:
		return true
	}
	return false
}

// Turn represents the direction of a quarter turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn, seen from outside the face
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
)

// ReversalMarker is the suffix that turns a clockwise token into its inverse.
const ReversalMarker = "'"

// Move represents a single quarter turn of one face.
type Move struct {
	Face Face `json:"face"`
	Turn Turn `json:"turn"`
}

// Clockwise reports whether the move turns its face clockwise.
func (m Move) Clockwise() bool {
	return m.Turn != TurnCCW
}

// Notation returns the token for this move.
// Examples: R, R', U, U'
func (m Move) Notation() string {
	if m.Turn == TurnCCW {
		return string(m.Face) + ReversalMarker
	}
	return string(m.Face)
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Base returns the face letter without the reversal marker.
func (m Move) Base() string {
	return string(m.Face)
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	if m.Turn == TurnCCW {
		inv.Turn = TurnCW
	} else {
		inv.Turn = TurnCCW
	}
	return inv
}

// SameFace returns true if both moves turn the same face.
func (m Move) SameFace(other Move) bool {
	return m.Face == other.Face
}

// IsCancellation returns true if the other move undoes this move.
func (m Move) IsCancellation(other Move) bool {
	return m.Face == other.Face && m.Turn == -other.Turn
}

// ParseMove parses a single token: one of U D F B L R, optionally followed
// by a single reversal marker.
func ParseMove(s string) (Move, error) {
	if len(s) == 0 || len(s) > 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	face := Face(s[:1])
	if !face.Valid() {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := TurnCW
	if len(s) == 2 {
		if s[1:] != ReversalMarker {
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
		turn = TurnCCW
	}

	return Move{Face: face, Turn: turn}, nil
}

// TokenCount is the number of distinct quarter-turn moves.
const TokenCount = 12

// Token encodes the move as an index into the scramble alphabet.
// Encoding: face*2 + dir where:
//   - face: U=0, D=1, F=2, B=3, L=4, R=5
//   - dir: CW=0, CCW=1
func (m Move) Token() uint8 {
	var faceCode uint8
	switch m.Face {
	case FaceU:
		faceCode = 0
	case FaceD:
		faceCode = 1
	case FaceF:
		faceCode = 2
	case FaceB:
		faceCode = 3
	case FaceL:
		faceCode = 4
	case FaceR:
		faceCode = 5
	}

	var dirCode uint8
	if m.Turn == TurnCCW {
		dirCode = 1
	}

	return faceCode*2 + dirCode
}

// MoveFromToken decodes a token back into a Move. Tokens are taken modulo
// TokenCount.
func MoveFromToken(token uint8) Move {
	token %= TokenCount
	turn := TurnCW
	if token%2 == 1 {
		turn = TurnCCW
	}
	return Move{Face: Faces[token/2], Turn: turn}
}
